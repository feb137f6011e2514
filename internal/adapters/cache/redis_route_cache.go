package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"waste-route-service/internal/domain"
)

const redisRouteKeyPrefix = "routes:"

// Redis-backed cache for computed route sets. Unlike the SQL caches,
// entries expire: a planning result is only reused for the TTL window.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

// Fetch a cached route set by key.
func (c *RedisRouteCache) Get(ctx context.Context, key string) (domain.RouteSet, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("route cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	payload, err := c.client.Get(ctx, redisRouteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: redis get: %w", err)
	}

	routes, err := decodeRoutes(payload)
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}

	return routes, true, nil
}

// Store a computed route set under a key with the configured TTL.
func (c *RedisRouteCache) Put(ctx context.Context, key string, routes domain.RouteSet) error {
	if c.client == nil {
		return errors.New("route cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	payload, err := encodeRoutes(routes)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	if err := c.client.Set(ctx, redisRouteKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: redis set: %w", key, err)
	}

	return nil
}
