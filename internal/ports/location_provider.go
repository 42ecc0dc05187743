package ports

import (
	"context"
	"weather-page-service/internal/domain"
)

// Contract for locating the caller from its network address.
type IPLocator interface {
	// Return the place the provider infers for the calling address.
	LocateByIP(ctx context.Context) (domain.Place, error)
}

// Contract for resolving a free-text place query.
type Geocoder interface {
	// Return at most limit candidate places for the query, best match first.
	Geocode(ctx context.Context, query string, limit int) ([]domain.Place, error)
}
