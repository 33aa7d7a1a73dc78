package ports

import (
	"context"

	"trip-fuel-service/internal/domain"
)

// Port: a persistent cache of forward-geocode results, keyed by the
// normalized place name. A nil cache is valid and means every lookup
// goes straight to the provider.
type GeocodeCache interface {
	// GetMany returns cached positions for the given names; names with no
	// cached entry are simply absent from the result map.
	GetMany(ctx context.Context, names []string) (map[string]domain.Position, error)

	// PutMany stores name -> position mappings.
	PutMany(ctx context.Context, results map[string]domain.Position) error
}
