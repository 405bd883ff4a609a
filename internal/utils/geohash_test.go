package utils

import (
	"math"
	"testing"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name      string
		a         models.Coordinate
		b         models.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			a:         models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
			b:         models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
			expected:  0,
			tolerance: 1e-9,
		},
		{
			name:      "Bengaluru to Mysuru",
			a:         models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
			b:         models.Coordinate{Latitude: 12.2958, Longitude: 76.6394},
			expected:  128.0,
			tolerance: 3.0,
		},
		{
			name:      "One degree of latitude",
			a:         models.Coordinate{Latitude: 0, Longitude: 0},
			b:         models.Coordinate{Latitude: 1, Longitude: 0},
			expected:  111.19,
			tolerance: 0.01,
		},
		{
			name:      "Cross antimeridian",
			a:         models.Coordinate{Latitude: 0, Longitude: 179.5},
			b:         models.Coordinate{Latitude: 0, Longitude: -179.5},
			expected:  111.19,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := []models.Coordinate{
		{Latitude: 12.9716, Longitude: 77.5946},
		{Latitude: 13.1986, Longitude: 77.7066},
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: 51.5074, Longitude: -0.1278},
	}

	for i := range points {
		for j := range points {
			ab := DistanceKm(points[i], points[j])
			ba := DistanceKm(points[j], points[i])
			assert.InDelta(t, ab, ba, 1e-9)
			assert.False(t, math.IsNaN(ab))
			if i != j {
				assert.Greater(t, ab, 0.0)
			}
		}
	}
}

func TestEncodeCoordinate(t *testing.T) {
	c := models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}

	hash := EncodeCoordinate(c, 9)
	assert.Len(t, hash, 9)
	assert.Equal(t, "tdr1v9qtj", hash)
	assert.Equal(t, hash[:5], EncodeCoordinate(c, 5))
}
