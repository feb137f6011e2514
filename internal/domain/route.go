package domain

import "fmt"

// Represents the planned collection route for a single cluster.
// A Route is the output of the routing algorithm and describes the order
// in which the cluster's hotspots are visited, along with the total
// great-circle path length. Stops is a permutation of the cluster's
// member list. It is immutable planning data and contains no side effects.
type Route struct {
	ClusterID       int
	Stops           []GeoPoint
	TotalDistanceKm float64
}

// RouteSet maps a cluster label to its planned route.
// It is a computed value with the lifetime of a single planning call;
// nothing in this package persists it.
type RouteSet map[string]Route

// ClusterLabel renders the external label for a cluster id.
func ClusterLabel(id int) string { return fmt.Sprintf("cluster_%d", id) }
