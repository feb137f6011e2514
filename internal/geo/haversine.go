// Package geo provides the great-circle distance primitive the route
// planner is built on.
package geo

import (
	"math"

	"waste-route-service/internal/domain"
)

// Mean Earth radius in kilometers.
const EarthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two
// (latitude, longitude) pairs given in degrees.
//
// Inputs are not range-checked: out-of-range coordinates produce a
// mathematically defined but meaningless result. Symmetric, and zero for
// identical points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return EarthRadiusKm * c
}

// Distance is HaversineKm over domain points.
func Distance(a, b domain.GeoPoint) float64 {
	return HaversineKm(a.Lat, a.Lon, b.Lat, b.Lon)
}
