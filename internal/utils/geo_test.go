package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sydney CBD, the default service-area centre.
const (
	sydneyLat = -33.8688
	sydneyLng = 151.2093
)

func TestHaversineKM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKM                 float64
		tolerance              float64
	}{
		{name: "same point", lat1: sydneyLat, lon1: sydneyLng, lat2: sydneyLat, lon2: sydneyLng, wantKM: 0, tolerance: 1e-9},
		{name: "sydney to parramatta", lat1: sydneyLat, lon1: sydneyLng, lat2: -33.8150, lon2: 151.0011, wantKM: 20.2, tolerance: 0.5},
		{name: "sydney to melbourne", lat1: sydneyLat, lon1: sydneyLng, lat2: -37.8136, lon2: 144.9631, wantKM: 713.4, tolerance: 2},
		{name: "one degree of latitude", lat1: 0, lon1: 0, lat2: 1, lon2: 0, wantKM: 111.19, tolerance: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKM, got, tt.tolerance)
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	ab := HaversineKM(sydneyLat, sydneyLng, -37.8136, 144.9631)
	ba := HaversineKM(-37.8136, 144.9631, sydneyLat, sydneyLng)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestCheckServiceArea(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantIn   bool
	}{
		{name: "centre itself", lat: sydneyLat, lng: sydneyLng, wantIn: true},
		{name: "parramatta inside 50km", lat: -33.8150, lng: 151.0011, wantIn: true},
		{name: "wollongong outside 50km", lat: -34.4278, lng: 150.8931, wantIn: false},
		{name: "melbourne far outside", lat: -37.8136, lng: 144.9631, wantIn: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckServiceArea(sydneyLat, sydneyLng, 50, tt.lat, tt.lng)
			assert.Equal(t, tt.wantIn, res.InServiceArea)
			assert.Equal(t, 50.0, res.ServiceAreaRadiusKM)
			if tt.wantIn {
				assert.Contains(t, res.Message, "within our service area")
			} else {
				assert.Contains(t, res.Message, "outside our service area")
			}
		})
	}
}

func TestCheckServiceAreaBoundary(t *testing.T) {
	// A point just inside the radius is in; just past it is out. One degree
	// of latitude is ~111.19km, so offsets are computed from that.
	in := CheckServiceArea(0, 0, 50, 49.9/111.19, 0)
	out := CheckServiceArea(0, 0, 50, 50.1/111.19, 0)
	assert.True(t, in.InServiceArea)
	assert.False(t, out.InServiceArea)
}
