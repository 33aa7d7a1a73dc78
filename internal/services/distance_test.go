package services

import (
	"math"
	"testing"

	"trip-fuel-service/internal/domain"
)

func TestDistanceKmSymmetricAndZero(t *testing.T) {
	m := NewDistanceModel(DefaultRoadFactor)

	cairo := domain.Coordinate{Name: "Cairo", Lat: 30.0444, Lon: 31.2357}
	alex := domain.Coordinate{Name: "Alexandria", Lat: 31.2001, Lon: 29.9187}

	ab := m.DistanceKm(cairo, alex)
	ba := m.DistanceKm(alex, cairo)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}

	if d := m.DistanceKm(cairo, cairo); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceKmCairoAlexandria(t *testing.T) {
	m := NewDistanceModel(DefaultRoadFactor)

	cairo := domain.Coordinate{Name: "Cairo", Lat: 30.0444, Lon: 31.2357}
	alex := domain.Coordinate{Name: "Alexandria", Lat: 31.2001, Lon: 29.9187}

	// Great-circle Cairo-Alexandria is roughly 180 km; with the 1.25 road
	// factor the corrected distance lands near 225 km.
	d := m.DistanceKm(cairo, alex)
	if d < 210 || d > 240 {
		t.Fatalf("corrected distance = %v km, want ~225 km", d)
	}
}

func TestDistanceKmRoadFactorScalesLinearly(t *testing.T) {
	a := domain.Coordinate{Lat: 30.0, Lon: 31.0}
	b := domain.Coordinate{Lat: 30.5, Lon: 31.5}

	raw := NewDistanceModel(1.0).DistanceKm(a, b)
	corrected := NewDistanceModel(1.25).DistanceKm(a, b)

	if math.Abs(corrected-raw*1.25) > 1e-9 {
		t.Fatalf("corrected = %v, want %v", corrected, raw*1.25)
	}
}

func TestNewDistanceModelRejectsNonPositiveFactor(t *testing.T) {
	m := NewDistanceModel(0)
	if m.RoadFactor != DefaultRoadFactor {
		t.Fatalf("road factor = %v, want default %v", m.RoadFactor, DefaultRoadFactor)
	}
}
