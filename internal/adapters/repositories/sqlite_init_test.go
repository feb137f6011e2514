package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hotspots.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedAndListHotspots(t *testing.T) {
	db := openTestDB(t)

	seed := `[
		{"hotspot_id": 1, "latitude": 12.97, "longitude": 77.59, "waste_tons": 5},
		{"hotspot_id": 2, "latitude": 19.07, "longitude": 72.87, "waste_tons": 8}
	]`
	if err := SeedFromJSON(db, writeSeedFile(t, seed)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSQLHotspotRepository(db)
	hotspots, err := repo.ListHotspots(context.Background())
	if err != nil {
		t.Fatalf("list hotspots: %v", err)
	}

	if len(hotspots) != 2 {
		t.Fatalf("expected 2 hotspots, got %d", len(hotspots))
	}
	if hotspots[0].HotspotID != 1 || hotspots[1].HotspotID != 2 {
		t.Fatalf("hotspots out of id order: %v", hotspots)
	}
	if hotspots[0].Location.Lat != 12.97 || hotspots[0].Location.Lon != 77.59 {
		t.Fatalf("hotspot 1 location = %v", hotspots[0].Location)
	}
	if hotspots[1].WasteTons != 8 {
		t.Fatalf("hotspot 2 waste_tons = %f, want 8", hotspots[1].WasteTons)
	}
}

func TestSeedFromJSONRejectsBadCoordinates(t *testing.T) {
	db := openTestDB(t)

	cases := []struct {
		name string
		seed string
	}{
		{
			name: "latitude out of range",
			seed: `[{"hotspot_id": 1, "latitude": 95, "longitude": 0, "waste_tons": 1}]`,
		},
		{
			name: "longitude out of range",
			seed: `[{"hotspot_id": 1, "latitude": 0, "longitude": -200, "waste_tons": 1}]`,
		},
		{
			name: "missing id",
			seed: `[{"latitude": 0, "longitude": 0, "waste_tons": 1}]`,
		},
		{
			name: "negative weight",
			seed: `[{"hotspot_id": 1, "latitude": 0, "longitude": 0, "waste_tons": -1}]`,
		},
	}

	for _, tc := range cases {
		if err := SeedFromJSON(db, writeSeedFile(t, tc.seed)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestSeedFromJSONUpsert(t *testing.T) {
	db := openTestDB(t)

	first := `[{"hotspot_id": 1, "latitude": 12.97, "longitude": 77.59, "waste_tons": 5}]`
	if err := SeedFromJSON(db, writeSeedFile(t, first)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	second := `[{"hotspot_id": 1, "latitude": 12.97, "longitude": 77.59, "waste_tons": 9}]`
	if err := SeedFromJSON(db, writeSeedFile(t, second)); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	repo := NewSQLHotspotRepository(db)
	hotspots, err := repo.ListHotspots(context.Background())
	if err != nil {
		t.Fatalf("list hotspots: %v", err)
	}
	if len(hotspots) != 1 {
		t.Fatalf("expected 1 hotspot after reseed, got %d", len(hotspots))
	}
	if hotspots[0].WasteTons != 9 {
		t.Fatalf("waste_tons = %f, want 9", hotspots[0].WasteTons)
	}
}
