package geo

import (
	"math"
	"testing"

	"waste-route-service/internal/domain"
)

func TestHaversineIdentity(t *testing.T) {
	points := []domain.GeoPoint{
		{Lat: 0, Lon: 0},
		{Lat: 12.97, Lon: 77.59},
		{Lat: -33.87, Lon: 151.21},
	}

	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(%v, %v) = %f, want 0", p, p, d)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][2]domain.GeoPoint{
		{{Lat: 12.97, Lon: 77.59}, {Lat: 19.07, Lon: 72.87}},
		{{Lat: 28.61, Lon: 77.21}, {Lat: 12.98, Lon: 77.6}},
		{{Lat: -45.5, Lon: -100.25}, {Lat: 60.1, Lon: 24.9}},
	}

	for _, pair := range pairs {
		ab := Distance(pair[0], pair[1])
		ba := Distance(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Distance(%v, %v) = %f, Distance reversed = %f", pair[0], pair[1], ab, ba)
		}
	}
}

func TestHaversineAntipodal(t *testing.T) {
	// Half the Earth's circumference: pi * 6371 km.
	want := math.Pi * EarthRadiusKm

	got := HaversineKm(0, 0, 0, 180)
	if math.Abs(got-want) > 0.1 {
		t.Fatalf("antipodal distance = %f, want %f", got, want)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Bengaluru to Mumbai, roughly 845 km great-circle.
	got := HaversineKm(12.97, 77.59, 19.07, 72.87)
	if math.Abs(got-845) > 15 {
		t.Fatalf("Bengaluru-Mumbai distance = %f, want ~845", got)
	}
}

func TestDistanceMatchesHaversineKm(t *testing.T) {
	a := domain.GeoPoint{Lat: 12.97, Lon: 77.59}
	b := domain.GeoPoint{Lat: 28.61, Lon: 77.21}

	if Distance(a, b) != HaversineKm(a.Lat, a.Lon, b.Lat, b.Lon) {
		t.Fatal("Distance and HaversineKm disagree")
	}
}
