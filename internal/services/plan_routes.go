package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
	"waste-route-service/internal/ports"
)

type routeResult struct {
	label string
	route domain.Route
	err   error
}

// GenerateCollectionRoutes clusters the point set and produces one greedy
// route per cluster, keyed by cluster label.
//
// Clustering errors propagate unchanged; no validation is added here.
// Clusters are mutually independent after partitioning, so route
// construction fans out across a bounded worker pool. Every route starts
// at its cluster's first member in input order.
func GenerateCollectionRoutes(points []domain.GeoPoint, k int, opts KMeansOptions) (domain.RouteSet, error) {
	clusters, err := ClusterHotspots(points, k, opts)
	if err != nil {
		return nil, fmt.Errorf("generate collection routes: %w", err)
	}

	sem := make(chan struct{}, 4)
	resultsCh := make(chan routeResult, len(clusters))
	var wg sync.WaitGroup

	for _, cl := range clusters {
		wg.Add(1)
		go func(cl domain.Cluster) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			route, err := NearestNeighborRoute(cl.Members, 0)
			if err != nil {
				resultsCh <- routeResult{err: fmt.Errorf("generate collection routes: cluster %d: %w", cl.ID, err)}
				return
			}
			route.ClusterID = cl.ID

			resultsCh <- routeResult{label: domain.ClusterLabel(cl.ID), route: route}
		}(cl)
	}

	wg.Wait()
	close(resultsCh)

	routes := make(domain.RouteSet, len(clusters))
	for res := range resultsCh {
		if res.err != nil {
			return nil, res.err
		}
		routes[res.label] = res.route
	}

	return routes, nil
}

type PlanRoutesRequest struct {
	NClusters          int
	Seed               int64
	GeodesicClustering bool
}

// PlanCollectionRoutes is the service entry point: load hotspots, consult
// the route cache, compute on miss, store the result best-effort.
//
// Cache failures are logged and otherwise ignored; the cache is a
// collaborator, not a dependency of correctness.
func PlanCollectionRoutes(
	ctx context.Context,
	req PlanRoutesRequest,
	repo ports.HotspotRepository,
	routeCache ports.RouteCache,
) (_ domain.RouteSet, err error) {
	defer obs.Time(ctx, "services.PlanCollectionRoutes")(&err)

	hotspots, err := repo.ListHotspots(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan collection routes: list hotspots: %w", err)
	}

	points := make([]domain.GeoPoint, 0, len(hotspots))
	for _, h := range hotspots {
		points = append(points, h.Location)
	}

	key := RouteCacheKey(points, req.NClusters, req.Seed, req.GeodesicClustering)

	if routeCache != nil {
		cached, ok, cacheErr := routeCache.Get(ctx, key)
		if cacheErr != nil {
			log.Printf("route cache read failed: %v", cacheErr)
		} else if ok {
			return cached, nil
		}
	}

	opts := KMeansOptions{Seed: req.Seed, Geodesic: req.GeodesicClustering}
	routes, err := GenerateCollectionRoutes(points, req.NClusters, opts)
	if err != nil {
		return nil, fmt.Errorf("plan collection routes: %w", err)
	}

	if routeCache != nil {
		if cacheErr := routeCache.Put(ctx, key, routes); cacheErr != nil {
			log.Printf("route cache write failed: %v", cacheErr)
		}
	}

	return routes, nil
}

// RouteCacheKey derives the cache key for a planning request: a hash of
// the raw coordinate bytes combined with the clustering parameters.
// Identical (point set, k, seed, metric) inputs always map to the same key.
func RouteCacheKey(points []domain.GeoPoint, k int, seed int64, geodesic bool) string {
	h := xxhash.New()
	buf := make([]byte, 8)
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(p.Lat))
		_, _ = h.Write(buf)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(p.Lon))
		_, _ = h.Write(buf)
	}

	metric := "euclid"
	if geodesic {
		metric = "geodesic"
	}
	return fmt.Sprintf("%016x-k%d-s%d-%s", h.Sum64(), k, seed, metric)
}
