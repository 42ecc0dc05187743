package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"
)

var _ ports.GeocodeCache = (*SQLGeocodeCache)(nil)

// SQLGeocodeCache is a Postgres-backed cache mapping normalized queries to places.
// Rows older than ttl are treated as misses and overwritten on the next Put.
type SQLGeocodeCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLGeocodeCache(db *sql.DB, ttl time.Duration) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, TTL: ttl}
}

// Fetch the cached place for a query key.
func (s *SQLGeocodeCache) Get(
	ctx context.Context,
	key string,
) (_ domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.sql.Get")(&err)

	if s.DB == nil {
		return domain.Place{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Place{}, false, nil
	}

	q := `
	SELECT city, region, country, lat, lon
    FROM geocode_cache
    WHERE query = $1 AND updated_at > $2;
	`

	cutoff := time.Now().Add(-s.TTL)

	var p domain.Place
	err = s.DB.QueryRowContext(ctx, q, key, cutoff).Scan(&p.City, &p.Region, &p.Country, &p.Lat, &p.Lon)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return p, true, nil
}

// Store a query -> place mapping in the cache.
func (s *SQLGeocodeCache) Put(ctx context.Context, key string, p domain.Place) (err error) {
	defer obs.Time(ctx, "geocode.cache.sql.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("insert geocode cache: empty query key")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO geocode_cache (query, city, region, country, lat, lon, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, now())
	ON CONFLICT (query) DO UPDATE
	SET city = EXCLUDED.city,
		region = EXCLUDED.region,
		country = EXCLUDED.country,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		updated_at = EXCLUDED.updated_at;
	`, key, p.City, p.Region, p.Country, p.Lat, p.Lon)
	if err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", key, err)
	}

	return nil
}
