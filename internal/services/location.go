package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"
)

// LocationQuery is a parsed "City, Region, Country" search. Region and Country may be empty.
type LocationQuery struct {
	City    string
	Region  string
	Country string
}

// ParseLocationQuery splits raw on commas into positional city, region and country parts.
// Parts are trimmed; anything past the third comma-separated part is ignored.
func ParseLocationQuery(raw string) (LocationQuery, error) {
	if strings.TrimSpace(raw) == "" {
		return LocationQuery{}, domain.Validationf("please enter a location")
	}

	parts := strings.Split(raw, ",")
	for len(parts) < 3 {
		parts = append(parts, "")
	}

	q := LocationQuery{
		City:    strings.TrimSpace(parts[0]),
		Region:  strings.TrimSpace(parts[1]),
		Country: strings.TrimSpace(parts[2]),
	}
	if q.City == "" {
		return LocationQuery{}, domain.Validationf("please enter a city name")
	}

	return q, nil
}

// Query joins the non-empty parts with commas, the form the geocoder expects.
func (q LocationQuery) Query() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{q.City, q.Region, q.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ",")
}

// CacheKey collapses case and inner whitespace so equivalent searches share an entry.
func (q LocationQuery) CacheKey() string {
	return strings.ToLower(strings.Join(strings.Fields(q.Query()), " "))
}

// LocationResolver turns a caller address or a free-text query into a Place.
type LocationResolver struct {
	ipLocator ports.IPLocator
	geocoder  ports.Geocoder
	cache     ports.GeocodeCache
}

// cache may be nil.
func NewLocationResolver(ipLocator ports.IPLocator, geocoder ports.Geocoder, cache ports.GeocodeCache) *LocationResolver {
	return &LocationResolver{ipLocator: ipLocator, geocoder: geocoder, cache: cache}
}

// ResolveByIP locates the caller through the IP geolocation provider.
func (r *LocationResolver) ResolveByIP(ctx context.Context) (domain.Place, error) {
	if r.ipLocator == nil {
		return domain.Place{}, errors.New("resolve by ip: no ip locator configured")
	}

	place, err := r.ipLocator.LocateByIP(ctx)
	if err != nil {
		return domain.Place{}, fmt.Errorf("resolve by ip: %w", err)
	}

	log.Printf("req_id=%s location resolved by ip place=%q lat=%g lon=%g",
		obs.RequestID(ctx), place.Label(), place.Lat, place.Lon)

	return place, nil
}

// ResolveByQuery validates raw before any network call, then geocodes it with a single match.
func (r *LocationResolver) ResolveByQuery(ctx context.Context, raw string) (domain.Place, error) {
	q, err := ParseLocationQuery(raw)
	if err != nil {
		return domain.Place{}, err
	}

	key := q.CacheKey()
	if r.cache != nil {
		place, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			log.Printf("req_id=%s geocode cache read failed: %v", obs.RequestID(ctx), err)
		} else if ok {
			return place, nil
		}
	}

	if r.geocoder == nil {
		return domain.Place{}, errors.New("resolve by query: no geocoder configured")
	}

	matches, err := r.geocoder.Geocode(ctx, q.Query(), 1)
	if err != nil {
		return domain.Place{}, fmt.Errorf("resolve by query %q: %w", q.Query(), err)
	}
	if len(matches) == 0 {
		return domain.Place{}, fmt.Errorf("resolve by query %q: %w", q.Query(), domain.ErrNotFound)
	}

	place := matches[0]

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, place); err != nil {
			log.Printf("req_id=%s geocode cache write failed: %v", obs.RequestID(ctx), err)
		}
	}

	return place, nil
}
