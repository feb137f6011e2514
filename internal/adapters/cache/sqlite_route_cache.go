package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"waste-route-service/internal/domain"
)

// SQLite backed cache for computed route sets. Keys are expected to be
// consistent (already derived from the point-set hash) by the caller.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch a cached route set by key.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (domain.RouteSet, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT routes
	FROM route_cache
	WHERE cache_key = ?;
	`

	var payload []byte
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
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
func (s *SqliteRouteCache) Put(ctx context.Context, key string, routes domain.RouteSet) error {
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
	INSERT OR REPLACE INTO route_cache (cache_key, routes)
	VALUES (?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, q, key, payload); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
