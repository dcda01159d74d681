package utils

import (
	"fmt"
	"math"
)

// earthRadiusKM is the mean radius of the Earth used by the Haversine
// great-circle formula.
const earthRadiusKM = 6371.0

// HaversineKM returns the great-circle distance in kilometers between two
// latitude/longitude points.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// ServiceAreaResult is the response body of the service-area check endpoint.
type ServiceAreaResult struct {
	InServiceArea       bool    `json:"in_service_area"`
	DistanceKM          float64 `json:"distance_km"`
	ServiceAreaRadiusKM float64 `json:"service_area_radius_km"`
	Message             string  `json:"message"`
}

// CheckServiceArea evaluates whether a point lies within radiusKM of the
// service-area centre and builds the customer-facing result. Distances are
// rounded to two decimals for display.
func CheckServiceArea(centerLat, centerLng, radiusKM, lat, lng float64) ServiceAreaResult {
	dist := HaversineKM(centerLat, centerLng, lat, lng)
	rounded := math.Round(dist*100) / 100
	in := dist <= radiusKM

	msg := fmt.Sprintf("Location is within our service area (within %gkm)", radiusKM)
	if !in {
		msg = fmt.Sprintf("Location is outside our service area (%.2fkm from center, max %gkm)", rounded, radiusKM)
	}
	return ServiceAreaResult{
		InServiceArea:       in,
		DistanceKM:          rounded,
		ServiceAreaRadiusKM: radiusKM,
		Message:             msg,
	}
}
