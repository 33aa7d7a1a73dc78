package services

import (
	"context"
	"errors"
	"testing"

	"trip-fuel-service/internal/adapters/geocode"
	"trip-fuel-service/internal/domain"
)

func newTestBuilder(mock *geocode.MockGeocoder) *TripReportBuilder {
	model := NewDistanceModel(DefaultRoadFactor)
	return &TripReportBuilder{
		Resolver:  &GeoResolver{Geocoder: mock},
		Sequencer: RouteSequencer{Distance: model},
		Estimator: CostEstimator{Distance: model},
		Tables:    domain.DefaultFuelTables(),
	}
}

func TestBuildProducesBothSections(t *testing.T) {
	b := newTestBuilder(geocode.NewMockGeocoder(testPlaces()))

	report, err := b.Build(context.Background(), []string{"Cairo", "Giza", "Alexandria"}, "Toyota", "92", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.AsEntered.Ordered) != 3 {
		t.Fatalf("as-entered stops = %d, want 3", len(report.AsEntered.Ordered))
	}
	if len(report.AsEntered.Legs) != 2 {
		t.Fatalf("as-entered legs = %d, want 2", len(report.AsEntered.Legs))
	}

	// As-entered preserves the input order.
	if report.AsEntered.Ordered[0].Name != "Cairo" ||
		report.AsEntered.Ordered[1].Name != "Giza" ||
		report.AsEntered.Ordered[2].Name != "Alexandria" {
		t.Fatalf("as-entered order wrong: %+v", report.AsEntered.Ordered)
	}

	if report.Optimized == nil {
		t.Fatal("optimized section missing")
	}
	if report.Optimized.Ordered[0].Name != "Cairo" {
		t.Fatalf("optimized start = %q, want Cairo", report.Optimized.Ordered[0].Name)
	}
	if len(report.Optimized.Legs) != 2 {
		t.Fatalf("optimized legs = %d, want 2", len(report.Optimized.Legs))
	}

	for i, leg := range report.AsEntered.Legs {
		want := leg.DistanceKm * 0.059 * 15.00
		if leg.FuelCostEGP != want {
			t.Fatalf("leg %d cost = %v, want %v", i, leg.FuelCostEGP, want)
		}
	}
}

func TestBuildWithoutOptimizedSection(t *testing.T) {
	b := newTestBuilder(geocode.NewMockGeocoder(testPlaces()))

	report, err := b.Build(context.Background(), []string{"Cairo", "Giza"}, "Toyota", "92", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Optimized != nil {
		t.Fatal("optimized section should be nil when not requested")
	}
}

func TestBuildAbortsBeforeEstimatingOnResolveError(t *testing.T) {
	b := newTestBuilder(geocode.NewMockGeocoder(testPlaces()))

	_, err := b.Build(context.Background(), []string{"Nowhereland123xyz"}, "Toyota", "92", true)
	if !errors.Is(err, domain.ErrInsufficientLocations) {
		t.Fatalf("error = %v, want ErrInsufficientLocations", err)
	}

	_, err = b.Build(context.Background(), []string{"Cairo", "Qwxzfaketown999"}, "Toyota", "92", true)
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestBuildLenientProfileDefaultsToZeroCost(t *testing.T) {
	b := newTestBuilder(geocode.NewMockGeocoder(testPlaces()))

	report, err := b.Build(context.Background(), []string{"Cairo", "Giza"}, "select", "select", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.AsEntered.TotalCostEGP != 0 {
		t.Fatalf("total = %v, want 0 for unrecognized profile", report.AsEntered.TotalCostEGP)
	}
}

func TestBuildStrictProfileRejectsUnknownKeys(t *testing.T) {
	b := newTestBuilder(geocode.NewMockGeocoder(testPlaces()))
	b.StrictProfile = true

	_, err := b.Build(context.Background(), []string{"Cairo", "Giza"}, "select", "92", true)
	var profileErr *domain.UnrecognizedProfileError
	if !errors.As(err, &profileErr) {
		t.Fatalf("error = %v, want UnrecognizedProfileError", err)
	}
}
