package repositories

import (
	"encoding/json"
	"fmt"
	"os"
)

type HotspotSeed struct {
	HotspotID int     `json:"hotspot_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	WasteTons float64 `json:"waste_tons"`
}

// loadHotspotSeeds reads and validates the seed file shared by the SQLite
// and Postgres seeding paths. Coordinates are range-checked here because
// the planning core deliberately does not validate them.
func loadHotspotSeeds(jsonPath string) ([]HotspotSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed hotspots: read %q: %w", jsonPath, err)
	}

	var data []HotspotSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed hotspots: parse json: %w", err)
	}

	rows := make([]HotspotSeed, 0, len(data))
	for i, item := range data {
		if item.HotspotID <= 0 {
			return nil, fmt.Errorf("seed hotspots: invalid hotspot_id at index %d: %d", i+1, item.HotspotID)
		}
		if item.Latitude < -90 || item.Latitude > 90 {
			return nil, fmt.Errorf("seed hotspots: hotspot_id=%d latitude %f outside [-90, 90]", item.HotspotID, item.Latitude)
		}
		if item.Longitude < -180 || item.Longitude > 180 {
			return nil, fmt.Errorf("seed hotspots: hotspot_id=%d longitude %f outside [-180, 180]", item.HotspotID, item.Longitude)
		}
		if item.WasteTons < 0 {
			return nil, fmt.Errorf("seed hotspots: hotspot_id=%d waste_tons must not be negative", item.HotspotID)
		}
		rows = append(rows, item)
	}

	return rows, nil
}
