package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createHotspotsQuery := `
	CREATE TABLE IF NOT EXISTS hotspots (
		hotspot_id INTEGER PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		waste_tons DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		cache_key TEXT PRIMARY KEY,
		routes TEXT NOT NULL
	);
	`

	statements := []string{
		createHotspotsQuery,
		createRouteCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with hotspot data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadHotspotSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed hotspots: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO hotspots (hotspot_id, latitude, longitude, waste_tons)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (hotspot_id) DO UPDATE
	SET latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		waste_tons = EXCLUDED.waste_tons;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed hotspots: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, h := range rows {
		if _, err := stmt.Exec(h.HotspotID, h.Latitude, h.Longitude, h.WasteTons); err != nil {
			return fmt.Errorf("seed hotspots: insert hotspot_id=%d: %w", h.HotspotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed hotspots: commit tx: %w", err)
	}

	return nil
}
