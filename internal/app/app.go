package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"weather-page-service/internal/adapters/cache"
	"weather-page-service/internal/adapters/ipapi"
	"weather-page-service/internal/adapters/openweather"
	"weather-page-service/internal/adapters/ratelimit"
	"weather-page-service/internal/config"
	"weather-page-service/internal/platform/db"
	"weather-page-service/internal/ports"
	"weather-page-service/internal/services"

	"github.com/redis/go-redis/v9"
)

// App holds the wired services shared by the server and the CLI.
type App struct {
	Resolver *services.LocationResolver
	Weather  *services.WeatherService

	closers []func() error
}

// New wires concrete adapters behind ports according to cfg.
// The caller must Close the returned App.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	client, err := openweather.NewClient(cfg.WeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.OpenWeatherGeoURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	// Weather and geocoding draw from the same OpenWeather quota.
	limiter := ratelimit.NewLimiter(cfg.ProviderRPS, cfg.ProviderBurst)
	provider := ratelimit.NewWeatherProvider(client, limiter)
	geocoder := ratelimit.NewGeocoder(client, limiter)

	a := &App{}

	geocodeCache, err := a.openGeocodeCache(ctx, cfg)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("new app: %w", err)
	}

	locator := ipapi.NewLocator(cfg.IPAPIURL, cfg.HTTPTimeout)

	a.Resolver = services.NewLocationResolver(locator, geocoder, geocodeCache)
	a.Weather = services.NewWeatherService(provider, cfg.DisplayLocation)
	return a, nil
}

// openGeocodeCache returns nil when caching is disabled.
func (a *App) openGeocodeCache(ctx context.Context, cfg config.Config) (ports.GeocodeCache, error) {
	switch cfg.GeocodeCache {
	case "":
		return nil, nil

	case "memory":
		log.Printf("geocode cache=memory ttl=%s", cfg.GeocodeCacheTTL)
		return cache.NewMemoryGeocodeCache(cfg.GeocodeCacheTTL), nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		a.closers = append(a.closers, rdb.Close)
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("open geocode cache: ping redis %s: %w", cfg.RedisAddr, err)
		}
		log.Printf("geocode cache=redis addr=%s ttl=%s", cfg.RedisAddr, cfg.GeocodeCacheTTL)
		return cache.NewRedisGeocodeCache(rdb, cfg.GeocodeCacheTTL), nil

	case "postgres":
		conn, err := OpenDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open geocode cache: %w", err)
		}
		a.closers = append(a.closers, conn.Close)
		log.Printf("geocode cache=postgres ttl=%s", cfg.GeocodeCacheTTL)
		return cache.NewSQLGeocodeCache(conn, cfg.GeocodeCacheTTL), nil

	default:
		return nil, fmt.Errorf("open geocode cache: unknown kind %q", cfg.GeocodeCache)
	}
}

// OpenDatabase connects to Postgres and ensures the geocode cache schema exists.
func OpenDatabase(ctx context.Context, databaseURL string) (*sql.DB, error) {
	conn, err := db.Open(databaseURL)
	if err != nil {
		return nil, err
	}

	if err := cache.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// Close releases cache connections in reverse order of opening.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
