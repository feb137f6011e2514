package handlers

import (
	"log"
	"net/http"

	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/ports"
)

// HotspotHandler exposes read-only hotspot retrieval endpoints.
type HotspotHandler struct {
	Repo ports.HotspotRepository
}

func (h *HotspotHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	hotspots, err := h.Repo.ListHotspots(r.Context())
	if err != nil {
		log.Printf("list hotspots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHotspotsResponse{
		Hotspots: make([]dto.HotspotResponse, 0, len(hotspots)),
	}
	for _, hs := range hotspots {
		res.Hotspots = append(res.Hotspots, dto.HotspotResponse{
			HotspotID: hs.HotspotID,
			Latitude:  hs.Location.Lat,
			Longitude: hs.Location.Lon,
			WasteTons: hs.WasteTons,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
