package cache

import (
	"encoding/json"
	"fmt"

	"waste-route-service/internal/domain"
)

// Wire form shared by the SQL and Redis route caches. Stops are stored as
// [lat, lon] pairs, matching the external output contract.
type cachedRoute struct {
	ClusterID       int         `json:"cluster_id"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	Stops           [][]float64 `json:"stops"`
}

func encodeRoutes(routes domain.RouteSet) ([]byte, error) {
	out := make(map[string]cachedRoute, len(routes))
	for label, r := range routes {
		stops := make([][]float64, 0, len(r.Stops))
		for _, s := range r.Stops {
			stops = append(stops, s.CoordsToList())
		}
		out[label] = cachedRoute{
			ClusterID:       r.ClusterID,
			TotalDistanceKm: r.TotalDistanceKm,
			Stops:           stops,
		}
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode routes: %w", err)
	}
	return payload, nil
}

func decodeRoutes(payload []byte) (domain.RouteSet, error) {
	var raw map[string]cachedRoute
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}

	routes := make(domain.RouteSet, len(raw))
	for label, r := range raw {
		stops := make([]domain.GeoPoint, 0, len(r.Stops))
		for i, s := range r.Stops {
			if len(s) != 2 {
				return nil, fmt.Errorf("decode routes: %s stop #%d: expected [lat, lon], got %d values", label, i, len(s))
			}
			stops = append(stops, domain.GeoPoint{Lat: s[0], Lon: s[1]})
		}
		routes[label] = domain.Route{
			ClusterID:       r.ClusterID,
			Stops:           stops,
			TotalDistanceKm: r.TotalDistanceKm,
		}
	}

	return routes, nil
}
