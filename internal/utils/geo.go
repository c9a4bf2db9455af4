package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/montirku/montirku/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula
func DistanceKm(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CoverRadius returns the geohash cell of the origin plus its eight
// neighbors at the given precision. Any point within one cell width of the
// origin falls inside this set, so it serves as a coarse candidate filter
// ahead of the exact distance check.
func CoverRadius(origin models.Location, precision uint) []string {
	center := geohash.EncodeWithPrecision(origin.Latitude, origin.Longitude, precision)
	return append(geohash.Neighbors(center), center)
}

// CellWidthKm returns the approximate minimum dimension of a geohash cell
// at the given precision. A center-plus-neighbors cover is guaranteed to
// contain every point within this distance of the origin.
func CellWidthKm(precision uint) float64 {
	switch {
	case precision <= 1:
		return 5000.0
	case precision == 2:
		return 625.0
	case precision == 3:
		return 156.0
	case precision == 4:
		return 19.5
	case precision == 5:
		return 4.9
	case precision == 6:
		return 0.61
	default:
		return 0.15
	}
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
