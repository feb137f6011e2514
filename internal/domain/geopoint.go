package domain

// Immutable geographic coordinates in degrees (latitude, longitude).
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lon] for the external output contract.
func (p GeoPoint) CoordsToList() []float64 { return []float64{p.Lat, p.Lon} }

// Represents a geo-located waste accumulation site.
// WasteTons is informational only: it is reported to callers but does not
// influence clustering or routing.
type Hotspot struct {
	HotspotID int
	Location  GeoPoint
	WasteTons float64
}
