package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"waste-route-service/internal/domain"
)

// SQL-backed implementation of the HotspotRepository port.
// The query uses no engine-specific syntax, so the same repository serves
// both the SQLite and Postgres drivers.
type SQLHotspotRepository struct{ DB *sql.DB }

func NewSQLHotspotRepository(db *sql.DB) *SQLHotspotRepository {
	return &SQLHotspotRepository{DB: db}
}

// Return all hotspots stored in the database in id order.
func (s *SQLHotspotRepository) ListHotspots(ctx context.Context) ([]domain.Hotspot, error) {
	if s.DB == nil {
		return nil, errors.New("sql hotspot repository: DB is nil")
	}

	query := `
	SELECT
		hotspot_id,
		latitude,
		longitude,
		waste_tons
	FROM hotspots
	ORDER BY hotspot_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hotspots: query hotspots table: %w", err)
	}
	defer rows.Close()

	hotspots := make([]domain.Hotspot, 0, 64)
	for rows.Next() {
		var id int
		var lat, lon, tons float64
		if err := rows.Scan(&id, &lat, &lon, &tons); err != nil {
			return nil, fmt.Errorf("list hotspots: scan row: %w", err)
		}
		hotspots = append(hotspots, domain.Hotspot{
			HotspotID: id,
			Location:  domain.GeoPoint{Lat: lat, Lon: lon},
			WasteTons: tons,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hotspots: row iteration: %w", err)
	}

	return hotspots, nil
}
