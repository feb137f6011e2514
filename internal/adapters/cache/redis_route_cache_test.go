package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"waste-route-service/internal/domain"
)

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	routeCache := NewRedisRouteCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := routeCache.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("Get(absent) = ok=%v err=%v, want miss", ok, err)
	}

	routes := domain.RouteSet{
		"cluster_0": {
			ClusterID: 0,
			Stops: []domain.GeoPoint{
				{Lat: 12.97, Lon: 77.59},
				{Lat: 12.98, Lon: 77.60},
			},
			TotalDistanceKm: 1.55,
		},
		"cluster_1": {
			ClusterID:       1,
			Stops:           []domain.GeoPoint{{Lat: 28.61, Lon: 77.21}},
			TotalDistanceKm: 0,
		},
	}

	key := "deadbeef-k2-s42-euclid"
	if err := routeCache.Put(ctx, key, routes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := routeCache.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, routes) {
		t.Fatalf("round trip mismatch:\ngot  %v\nwant %v", got, routes)
	}
}

func TestRedisRouteCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	routeCache := NewRedisRouteCache(client, time.Minute)
	ctx := context.Background()

	routes := domain.RouteSet{
		"cluster_0": {ClusterID: 0, Stops: []domain.GeoPoint{{Lat: 12.97, Lon: 77.59}}},
	}

	if err := routeCache.Put(ctx, "expiring", routes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := routeCache.Get(ctx, "expiring"); err != nil || ok {
		t.Fatalf("Get after expiry = ok=%v err=%v, want miss", ok, err)
	}
}

func TestRedisRouteCacheEmptyKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	routeCache := NewRedisRouteCache(client, time.Minute)
	ctx := context.Background()

	if err := routeCache.Put(ctx, " ", domain.RouteSet{}); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, _, err := routeCache.Get(ctx, ""); err == nil {
		t.Fatal("expected error for empty key")
	}
}
