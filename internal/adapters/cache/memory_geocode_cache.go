package cache

import (
	"context"
	"time"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/ports"

	gocache "github.com/patrickmn/go-cache"
)

var _ ports.GeocodeCache = (*MemoryGeocodeCache)(nil)

// In-process geocode cache; entries expire after ttl and are purged every 2*ttl.
type MemoryGeocodeCache struct {
	c *gocache.Cache
}

func NewMemoryGeocodeCache(ttl time.Duration) *MemoryGeocodeCache {
	return &MemoryGeocodeCache{c: gocache.New(ttl, 2*ttl)}
}

func (m *MemoryGeocodeCache) Get(_ context.Context, key string) (domain.Place, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return domain.Place{}, false, nil
	}
	place, ok := v.(domain.Place)
	return place, ok, nil
}

func (m *MemoryGeocodeCache) Put(_ context.Context, key string, place domain.Place) error {
	m.c.Set(key, place, gocache.DefaultExpiration)
	return nil
}
