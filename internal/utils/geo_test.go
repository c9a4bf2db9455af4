package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/montirku/montirku/internal/pkg/models"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: 28.6139, Longitude: 77.2090},
			point2:    GeoPoint{Latitude: 28.6139, Longitude: 77.2090},
			expected:  0.0,
			tolerance: 1e-9,
		},
		{
			name:      "Central Delhi to North Delhi",
			point1:    GeoPoint{Latitude: 28.7041, Longitude: 77.1025},
			point2:    GeoPoint{Latitude: 28.6139, Longitude: 77.2090},
			expected:  12.5,
			tolerance: 0.5,
		},
		{
			name:      "Jakarta to Bandung",
			point1:    GeoPoint{Latitude: -6.175392, Longitude: 106.827153},
			point2:    GeoPoint{Latitude: -6.914744, Longitude: 107.609810},
			expected:  120.0,
			tolerance: 10.0,
		},
		{
			name:      "Cross equator",
			point1:    GeoPoint{Latitude: -1.0, Longitude: 100.0},
			point2:    GeoPoint{Latitude: 1.0, Longitude: 100.0},
			expected:  222.4,
			tolerance: 5.0,
		},
		{
			name:      "Cross 180th meridian",
			point1:    GeoPoint{Latitude: 0.0, Longitude: 179.0},
			point2:    GeoPoint{Latitude: 0.0, Longitude: -179.0},
			expected:  222.4,
			tolerance: 5.0,
		},
		{
			name:      "Antipodal points",
			point1:    GeoPoint{Latitude: 0.0, Longitude: 0.0},
			point2:    GeoPoint{Latitude: 0.0, Longitude: 180.0},
			expected:  20015.0,
			tolerance: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DistanceKm(tt.point1, tt.point2)

			assert.GreaterOrEqual(t, result, 0.0, "Distance should be non-negative")
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: 28.7041, Longitude: 77.1025}
	b := GeoPoint{Latitude: 28.6139, Longitude: 77.2090}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-6)
}

func TestDistanceKm_Poles(t *testing.T) {
	northPole := GeoPoint{Latitude: 90.0, Longitude: 0.0}
	southPole := GeoPoint{Latitude: -90.0, Longitude: 0.0}

	distance := DistanceKm(northPole, southPole)

	expected := math.Pi * 6371.0
	assert.InDelta(t, expected, distance, 10.0)
}

func TestCoverRadius(t *testing.T) {
	origin := models.Location{Latitude: 28.6139, Longitude: 77.2090}

	cells := CoverRadius(origin, 5)

	assert.Len(t, cells, 9)
	assert.Contains(t, cells, EncodeLocation(origin, 5))
}

func TestGeoPointFromLocation(t *testing.T) {
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}
	point := GeoPointFromLocation(loc)

	assert.Equal(t, loc.Latitude, point.Latitude)
	assert.Equal(t, loc.Longitude, point.Longitude)
}

func BenchmarkDistanceKm(b *testing.B) {
	point1 := GeoPoint{Latitude: 28.7041, Longitude: 77.1025}
	point2 := GeoPoint{Latitude: 28.6139, Longitude: 77.2090}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DistanceKm(point1, point2)
	}
}
