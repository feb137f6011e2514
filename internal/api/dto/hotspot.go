package dto

type HotspotResponse struct {
	HotspotID int     `json:"hotspot_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	WasteTons float64 `json:"waste_tons"`
}

type ListHotspotsResponse struct {
	Hotspots []HotspotResponse `json:"hotspots"`
}
