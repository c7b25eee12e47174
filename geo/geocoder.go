package geo

import (
	"context"

	"github.com/SaiPrasanna98/Smartroomate/core"
)

// Geocoder resolves postal codes into coordinates.
// Implementations must be thread-safe for concurrent use.
type Geocoder interface {
	// Resolve returns the coordinate for a postal code.
	// Returns an error wrapping ErrUnknownPostalCode when the code is not
	// known; callers treat that as a location non-match rather than a failure.
	Resolve(ctx context.Context, postalCode string) (core.Coordinate, error)
}
