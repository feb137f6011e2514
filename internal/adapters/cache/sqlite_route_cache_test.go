package cache

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	_ "modernc.org/sqlite"

	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/domain"
)

func TestSqliteRouteCacheRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	routeCache := NewSqliteRouteCache(db)
	ctx := context.Background()

	if _, ok, err := routeCache.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("Get(absent) = ok=%v err=%v, want miss", ok, err)
	}

	routes := domain.RouteSet{
		"cluster_0": {
			ClusterID: 0,
			Stops: []domain.GeoPoint{
				{Lat: 19.07, Lon: 72.87},
				{Lat: 19.08, Lon: 72.88},
			},
			TotalDistanceKm: 1.53,
		},
	}

	key := "cafef00d-k1-s42-euclid"
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

	// Overwriting the same key replaces the stored value.
	updated := domain.RouteSet{
		"cluster_0": {ClusterID: 0, Stops: []domain.GeoPoint{{Lat: 28.61, Lon: 77.21}}},
	}
	if err := routeCache.Put(ctx, key, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err = routeCache.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get after overwrite = ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, updated) {
		t.Fatalf("overwrite mismatch:\ngot  %v\nwant %v", got, updated)
	}
}
