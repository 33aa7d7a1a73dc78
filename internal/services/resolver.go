package services

import (
	"context"
	"fmt"
	"strings"

	"trip-fuel-service/internal/domain"
	"trip-fuel-service/internal/platform/obs"
	"trip-fuel-service/internal/ports"
)

// GeoResolver turns raw user-entered location strings into a
// deduplicated, ordered coordinate list via the Geocoder port.
type GeoResolver struct {
	Geocoder ports.Geocoder
}

// Resolve trims each input, skips empties, and deduplicates by exact
// trimmed string (first occurrence wins, order preserved). Fewer than
// two surviving names is ErrInsufficientLocations, checked before any
// collaborator call. Each surviving name is then forward-geocoded
// requesting a single candidate.
//
// Geocoding is fail-fast: the first name with zero candidates aborts
// with a NotFoundError and no partial list, and a provider error aborts
// with ErrProviderFailure. The context is checked before every
// collaborator call so a superseding request can cancel an in-flight
// resolution.
func (g *GeoResolver) Resolve(ctx context.Context, rawInputs []string) (_ []domain.Coordinate, err error) {
	defer obs.Time(ctx, "resolver.Resolve")(&err)

	seen := make(map[string]struct{}, len(rawInputs))
	names := make([]string, 0, len(rawInputs))

	for _, raw := range rawInputs {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) < 2 {
		return nil, domain.ErrInsufficientLocations
	}

	coords := make([]domain.Coordinate, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates, err := g.Geocoder.Forward(ctx, name, 1)
		if err != nil {
			// Cancellation is not a provider fault; report it as such so the
			// caller can treat a superseded request as a no-op.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("resolve %q: %w: %v", name, domain.ErrProviderFailure, err)
		}
		if len(candidates) == 0 {
			return nil, &domain.NotFoundError{Name: name}
		}

		coords = append(coords, domain.Coordinate{
			Name: name,
			Lat:  candidates[0].Lat,
			Lon:  candidates[0].Lon,
		})
	}

	return coords, nil
}
