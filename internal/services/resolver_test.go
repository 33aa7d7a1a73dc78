package services

import (
	"context"
	"errors"
	"testing"

	"trip-fuel-service/internal/adapters/geocode"
	"trip-fuel-service/internal/domain"
)

func testPlaces() []geocode.MockPlace {
	return []geocode.MockPlace{
		{Name: "Cairo", Lat: 30.0444, Lon: 31.2357},
		{Name: "Giza", Lat: 29.9870, Lon: 31.2118},
		{Name: "Alexandria", Lat: 31.2001, Lon: 29.9187},
		{Name: "A", Lat: 1, Lon: 1},
		{Name: "a", Lat: 2, Lon: 2},
		{Name: "B", Lat: 3, Lon: 3},
	}
}

func TestResolveTrimsAndDeduplicates(t *testing.T) {
	mock := geocode.NewMockGeocoder(testPlaces())
	r := &GeoResolver{Geocoder: mock}

	coords, err := r.Resolve(context.Background(), []string{"Cairo", "  Cairo  ", "", "   ", "Giza", "Cairo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(coords) != 2 {
		t.Fatalf("expected 2 coordinates, got %d", len(coords))
	}
	if coords[0].Name != "Cairo" || coords[1].Name != "Giza" {
		t.Fatalf("order = %q, %q; want Cairo, Giza", coords[0].Name, coords[1].Name)
	}

	// Duplicates must not reach the collaborator.
	if len(mock.Calls) != 2 {
		t.Fatalf("geocoder called %d times, want 2", len(mock.Calls))
	}
}

func TestResolveDedupIsCaseSensitive(t *testing.T) {
	r := &GeoResolver{Geocoder: geocode.NewMockGeocoder(testPlaces())}

	coords, err := r.Resolve(context.Background(), []string{"A", " a ", "A", "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(coords) != 3 {
		t.Fatalf("expected 3 coordinates, got %d", len(coords))
	}
	if coords[0].Name != "A" || coords[1].Name != "a" || coords[2].Name != "B" {
		t.Fatalf("order = %q, %q, %q; want A, a, B", coords[0].Name, coords[1].Name, coords[2].Name)
	}
}

func TestResolveFailsFastOnNotFound(t *testing.T) {
	mock := geocode.NewMockGeocoder(testPlaces())
	r := &GeoResolver{Geocoder: mock}

	_, err := r.Resolve(context.Background(), []string{"Cairo", "Qwxzfaketown999", "Giza"})

	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFound.Name != "Qwxzfaketown999" {
		t.Fatalf("Name = %q, want %q", notFound.Name, "Qwxzfaketown999")
	}

	// No further inputs are processed after the failure.
	if len(mock.Calls) != 2 {
		t.Fatalf("geocoder called %d times, want 2", len(mock.Calls))
	}
}

func TestResolveProviderFailure(t *testing.T) {
	mock := geocode.NewMockGeocoder(nil)
	mock.Err = errors.New("connection refused")
	r := &GeoResolver{Geocoder: mock}

	_, err := r.Resolve(context.Background(), []string{"Cairo", "Giza"})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("error = %v, want ErrProviderFailure", err)
	}
}

func TestResolveRequiresTwoLocations(t *testing.T) {
	r := &GeoResolver{Geocoder: geocode.NewMockGeocoder(testPlaces())}

	for _, inputs := range [][]string{
		{},
		{"Cairo"},
		{"Cairo", " Cairo "},
		{"", "   "},
		// A lone unresolvable entry fails the count check before any
		// geocoding happens.
		{"Nowhereland123xyz"},
	} {
		_, err := r.Resolve(context.Background(), inputs)
		if !errors.Is(err, domain.ErrInsufficientLocations) {
			t.Fatalf("inputs %v: error = %v, want ErrInsufficientLocations", inputs, err)
		}
	}
}

func TestResolveCancelledContext(t *testing.T) {
	r := &GeoResolver{Geocoder: geocode.NewMockGeocoder(testPlaces())}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, []string{"Cairo", "Giza"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
