package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
)

// SQLRouteCache is a Postgres-backed cache for computed route sets.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch a cached route set by key.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ domain.RouteSet, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT routes
	FROM route_cache
	WHERE cache_key = $1;
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	routes, err := decodeRoutes(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}

	return routes, true, nil
}

// Store a computed route set under a key.
func (s *SQLRouteCache) Put(ctx context.Context, key string, routes domain.RouteSet) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	payload, err := encodeRoutes(routes)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	q := `
	INSERT INTO route_cache (cache_key, routes)
	VALUES ($1, $2)
	ON CONFLICT (cache_key) DO UPDATE
	SET routes = EXCLUDED.routes;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, payload); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
