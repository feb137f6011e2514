package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/ports"
	"waste-route-service/internal/services"
)

// Defaults mirror the historical planner behavior: three collection
// routes, fixed seed for reproducible output.
const (
	defaultClusterCount = 3
	defaultSeed         = 42
)

type RouteHandler struct {
	Repo  ports.HotspotRepository
	Cache ports.RouteCache
}

// Plan clusters all stored hotspots and returns one collection route per
// cluster. It coordinates repository access, the route cache, and the
// planning computation.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	nClusters := req.NClusters
	if nClusters == 0 {
		nClusters = defaultClusterCount
	}

	seed := int64(defaultSeed)
	if req.Seed != nil {
		seed = *req.Seed
	}

	svcReq := services.PlanRoutesRequest{
		NClusters:          nClusters,
		Seed:               seed,
		GeodesicClustering: req.GeodesicClustering,
	}

	routes, err := services.PlanCollectionRoutes(r.Context(), svcReq, h.Repo, h.Cache)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParameter) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan collection routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteSetResponse{Routes: make(map[string]dto.RouteResponse, len(routes))}
	for label, route := range routes {
		stops := make([][]float64, 0, len(route.Stops))
		for _, s := range route.Stops {
			stops = append(stops, s.CoordsToList())
		}

		res.Routes[label] = dto.RouteResponse{
			ClusterID:       route.ClusterID,
			TotalDistanceKm: route.TotalDistanceKm,
			Stops:           stops,
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}
