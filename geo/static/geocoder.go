package static

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/geo"
)

// defaultTable maps US ZIP codes to coordinates for the cities the
// service ships with. Codes outside the table resolve to
// geo.ErrUnknownPostalCode; there is no fallback city.
var defaultTable = map[string]core.Coordinate{
	"75201": {Lat: 32.7767, Lon: -96.7970},  // Dallas
	"75202": {Lat: 32.7767, Lon: -96.7970},  // Dallas
	"78701": {Lat: 30.2672, Lon: -97.7431},  // Austin
	"78702": {Lat: 30.2672, Lon: -97.7431},  // Austin
	"10001": {Lat: 40.7505, Lon: -73.9934},  // New York
	"90210": {Lat: 34.0901, Lon: -118.4065}, // Beverly Hills
	"60601": {Lat: 41.8781, Lon: -87.6298},  // Chicago
	"02101": {Lat: 42.3601, Lon: -71.0589},  // Boston
}

// Geocoder implements geo.Geocoder backed by an in-memory table.
type Geocoder struct {
	table  map[string]core.Coordinate
	logger *slog.Logger
}

var _ geo.Geocoder = (*Geocoder)(nil)

// Option configures a Geocoder.
type Option func(*Geocoder)

// WithTable merges additional postal-code entries into the table,
// overriding built-in entries on collision.
func WithTable(entries map[string]core.Coordinate) Option {
	return func(g *Geocoder) {
		for code, coord := range entries {
			g.table[normalize(code)] = coord
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Geocoder) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGeocoder creates a table-backed geocoder with the built-in city table.
func NewGeocoder(opts ...Option) *Geocoder {
	g := &Geocoder{
		table:  make(map[string]core.Coordinate, len(defaultTable)),
		logger: slog.Default(),
	}
	for code, coord := range defaultTable {
		g.table[code] = coord
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolve returns the coordinate for a postal code.
func (g *Geocoder) Resolve(ctx context.Context, postalCode string) (core.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return core.Coordinate{}, err
	}

	code := normalize(postalCode)
	coord, ok := g.table[code]
	if !ok {
		g.logger.Debug("postal code not in table", "code", code)
		return core.Coordinate{}, fmt.Errorf("%w: %q", geo.ErrUnknownPostalCode, postalCode)
	}
	return coord, nil
}

// normalize trims whitespace and keeps only the primary 5-digit part of
// ZIP+4 style codes.
func normalize(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexByte(code, '-'); i > 0 {
		code = code[:i]
	}
	return code
}
