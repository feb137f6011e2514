package dto

type RouteRequest struct {
	NClusters          int    `json:"n_clusters"`
	Seed               *int64 `json:"seed"`
	GeodesicClustering bool   `json:"geodesic_clustering"`
}

type RouteResponse struct {
	ClusterID       int         `json:"cluster_id"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	Stops           [][]float64 `json:"stops"`
}

type RouteSetResponse struct {
	Routes map[string]RouteResponse `json:"routes"`
}
