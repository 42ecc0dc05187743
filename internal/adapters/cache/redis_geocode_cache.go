package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

var _ ports.GeocodeCache = (*RedisGeocodeCache)(nil)

const redisKeyPrefix = "geocode:"

// Redis-backed geocode cache storing places as JSON with a TTL.
type RedisGeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{rdb: rdb, ttl: ttl}
}

func (r *RedisGeocodeCache) Get(ctx context.Context, key string) (_ domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.Get")(&err)

	if r.rdb == nil {
		return domain.Place{}, false, errors.New("geocode cache: redis client is nil")
	}

	raw, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Place{}, false, nil
	}
	if err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: redis get %q: %w", key, err)
	}

	var place domain.Place
	if err := json.Unmarshal(raw, &place); err != nil {
		return domain.Place{}, false, fmt.Errorf("get geocode cache: decode %q: %w", key, err)
	}

	return place, true, nil
}

func (r *RedisGeocodeCache) Put(ctx context.Context, key string, place domain.Place) (err error) {
	defer obs.Time(ctx, "geocode.cache.redis.Put")(&err)

	if r.rdb == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	raw, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode %q: %w", key, err)
	}

	if err := r.rdb.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache: redis set %q: %w", key, err)
	}

	return nil
}
