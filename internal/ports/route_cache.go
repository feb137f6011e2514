package ports

import (
	"context"

	"waste-route-service/internal/domain"
)

// Port: a cache of computed route sets keyed by
// (point-set hash, cluster count, seed).
//
// Caching is an external collaborator, not part of the planning contract:
// the planner produces identical output with or without one.
type RouteCache interface {
	// Look up a previously computed route set. The second return value
	// reports whether the key was present.
	Get(ctx context.Context, key string) (domain.RouteSet, bool, error)
	// Store a computed route set under the given key.
	Put(ctx context.Context, key string, routes domain.RouteSet) error
}
