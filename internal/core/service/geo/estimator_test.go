package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	mumbai, ok := CityCoordinates("Mumbai")
	assert.True(t, ok)
	surat, ok := CityCoordinates("Surat")
	assert.True(t, ok)

	got := DistanceKm(mumbai.Lat, mumbai.Lng, surat.Lat, surat.Lng)
	assert.InDelta(t, 233.5, got, 1.0)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	got := DistanceKm(19.0760, 72.8777, 19.0760, 72.8777)
	assert.Equal(t, 0.0, got)
}

func TestCityCoordinates_Unknown(t *testing.T) {
	_, ok := CityCoordinates("Atlantis")
	assert.False(t, ok)

	// Lookup is case-sensitive by design.
	_, ok = CityCoordinates("mumbai")
	assert.False(t, ok)
}

func TestEstimateTravelTime(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		expected   TravelTime
	}{
		{"mumbai to surat road distance", 280, TravelTime{Hours: 5, Minutes: 36}},
		{"under an hour", 40, TravelTime{Hours: 0, Minutes: 48}},
		{"exact hour", 50, TravelTime{Hours: 1, Minutes: 0}},
		{"zero", 0, TravelTime{Hours: 0, Minutes: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateTravelTime(tt.distanceKm))
		})
	}
}

func TestEstimator_ResolveDistance(t *testing.T) {
	e := NewEstimator()

	km, ok := e.ResolveDistance("Mumbai", "Surat")
	assert.True(t, ok)
	assert.InDelta(t, 233.5, km, 1.0)

	_, ok = e.ResolveDistance("Mumbai", "Atlantis")
	assert.False(t, ok)

	_, ok = e.ResolveDistance("Atlantis", "Mumbai")
	assert.False(t, ok)
}
