package api

import (
	"net/http"

	"waste-route-service/internal/api/handlers"
	"waste-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(repo ports.HotspotRepository, routeCache ports.RouteCache) http.Handler {
	mux := http.NewServeMux()

	hotspotHandler := &handlers.HotspotHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Repo:  repo,
		Cache: routeCache,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/hotspots", hotspotHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return loggingMiddleware(mux)
}
