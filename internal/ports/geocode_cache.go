package ports

import (
	"context"
	"weather-page-service/internal/domain"
)

// Optional store for geocoding answers keyed by normalized query.
// Implementations must be safe for concurrent use.
type GeocodeCache interface {
	Get(ctx context.Context, key string) (domain.Place, bool, error)
	Put(ctx context.Context, key string, place domain.Place) error
}
