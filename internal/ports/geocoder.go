package ports

import (
	"context"

	"trip-fuel-service/internal/domain"
)

// Contract for resolving free-text place names to coordinates and back.
type Geocoder interface {
	// Forward returns up to limit candidate positions for a place name.
	// An empty slice means the name could not be geocoded; errors are
	// reserved for provider-level failures (network, bad responses).
	Forward(ctx context.Context, name string, limit int) ([]domain.Position, error)

	// Reverse returns a human-readable area name for a position.
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}
