package services

import (
	"fmt"
	"math"

	"waste-route-service/internal/domain"
	"waste-route-service/internal/geo"
)

// Build a visiting order over points using greedy nearest-neighbor
// construction on great-circle distance.
//
// The algorithm minimizes immediate travel distance at each step. It does
// not attempt global route optimization (e.g., TSP solvers). The design
// prioritizes determinism and simplicity over optimality; cluster sizes
// are expected to be small enough that O(n²) distance evaluations are
// acceptable.
//
// The returned route is an open path: it starts at startIndex and does
// not return there. An empty input yields an empty route, not an error.
// The caller fills in ClusterID.
func NearestNeighborRoute(points []domain.GeoPoint, startIndex int) (domain.Route, error) {
	if len(points) == 0 {
		return domain.Route{Stops: []domain.GeoPoint{}}, nil
	}

	if startIndex < 0 || startIndex >= len(points) {
		return domain.Route{}, fmt.Errorf(
			"nearest neighbor route: start_index=%d out of bounds [0, %d): %w",
			startIndex, len(points), domain.ErrInvalidParameter,
		)
	}

	visited := make([]bool, len(points))
	visited[startIndex] = true

	stops := make([]domain.GeoPoint, 0, len(points))
	stops = append(stops, points[startIndex])

	current := points[startIndex]
	totalKm := 0.0

	for len(stops) < len(points) {
		next := -1
		minDist := math.Inf(1)

		// Select the next stop by minimum haversine distance (greedy step.)
		// Strict < ensures ties keep the lowest original index.
		for i, p := range points {
			if visited[i] {
				continue
			}
			if d := geo.Distance(current, p); d < minDist {
				minDist = d
				next = i
			}
		}

		visited[next] = true
		stops = append(stops, points[next])
		totalKm += minDist
		current = points[next]
	}

	return domain.Route{Stops: stops, TotalDistanceKm: totalKm}, nil
}
