package geo

import (
	"math"

	"github.com/SaiPrasanna98/Smartroomate/core"
)

// EarthRadiusMiles is the Earth radius used by the haversine formula.
const EarthRadiusMiles = 3959.0

// Distance computes the great-circle distance in miles between two
// coordinates using the haversine formula. It is symmetric and returns
// exactly 0 for identical coordinates. Non-finite input yields NaN,
// which callers treat as an unavailable distance.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if !finite(lat1) || !finite(lon1) || !finite(lat2) || !finite(lon2) {
		return math.NaN()
	}
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dlon/2)*math.Sin(dlon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// DistanceBetween computes the great-circle distance between two coordinates.
func DistanceBetween(a, b core.Coordinate) float64 {
	return Distance(a.Lat, a.Lon, b.Lat, b.Lon)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
