package ports

import (
	"context"

	"waste-route-service/internal/domain"
)

// Port: a boundary for retrieving Hotspot entities from a data source.
type HotspotRepository interface {
	// Retrieve all hotspots available for route planning.
	ListHotspots(ctx context.Context) ([]domain.Hotspot, error)
}
