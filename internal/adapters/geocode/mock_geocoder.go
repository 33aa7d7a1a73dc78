package geocode

import (
	"context"

	"trip-fuel-service/internal/domain"
)

type MockPlace struct {
	Name string
	Lat  float64
	Lon  float64
}

// MockGeocoder is an in-memory Geocoder for tests. Unknown names
// resolve to zero candidates (not-found); Err, when set, is returned
// from every call to simulate a provider failure.
type MockGeocoder struct {
	Err    error
	places map[string]domain.Position
	// Calls records the names passed to Forward, in order.
	Calls []string
}

func NewMockGeocoder(places []MockPlace) *MockGeocoder {
	m := make(map[string]domain.Position, len(places))
	for _, p := range places {
		m[p.Name] = domain.Position{Lat: p.Lat, Lon: p.Lon}
	}
	return &MockGeocoder{places: m}
}

func (g *MockGeocoder) Forward(ctx context.Context, name string, limit int) ([]domain.Position, error) {
	g.Calls = append(g.Calls, name)

	if g.Err != nil {
		return nil, g.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := g.places[name]
	if !ok {
		return nil, nil
	}
	return []domain.Position{p}, nil
}

func (g *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}

	for name, p := range g.places {
		if p.Lat == lat && p.Lon == lon {
			return name, nil
		}
	}
	return "", nil
}
