package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the explicit process configuration handed to constructors.
type Config struct {
	Port string

	WeatherAPIKey      string
	OpenWeatherBaseURL string
	OpenWeatherGeoURL  string
	IPAPIURL           string
	HTTPTimeout        time.Duration

	// Zero disables outbound rate limiting.
	ProviderRPS   float64
	ProviderBurst int

	DisplayLocation *time.Location

	// One of "", "memory", "redis", "postgres".
	GeocodeCache    string
	GeocodeCacheTTL time.Duration
	RedisAddr       string
	DatabaseURL     string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
// Callers load any .env file beforehand.
func Load() (Config, error) {
	cfg := Config{
		Port:               Get("PORT", "3000"),
		WeatherAPIKey:      strings.TrimSpace(os.Getenv("WEATHER_API_KEY")),
		OpenWeatherBaseURL: Get("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		OpenWeatherGeoURL:  Get("OPENWEATHER_GEO_URL", "https://api.openweathermap.org/geo/1.0"),
		IPAPIURL:           Get("IPAPI_URL", "https://ipapi.co"),
		GeocodeCache:       strings.ToLower(strings.TrimSpace(os.Getenv("GEOCODE_CACHE"))),
		RedisAddr:          Get("REDIS_ADDR", "localhost:6379"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
	}

	if cfg.WeatherAPIKey == "" {
		return Config{}, errors.New("load config: WEATHER_API_KEY is required")
	}

	var err error
	if cfg.HTTPTimeout, err = time.ParseDuration(Get("HTTP_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("load config: HTTP_TIMEOUT: %w", err)
	}
	if cfg.GeocodeCacheTTL, err = time.ParseDuration(Get("GEOCODE_CACHE_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("load config: GEOCODE_CACHE_TTL: %w", err)
	}
	if cfg.ProviderRPS, err = strconv.ParseFloat(Get("PROVIDER_RPS", "0"), 64); err != nil {
		return Config{}, fmt.Errorf("load config: PROVIDER_RPS: %w", err)
	}
	if cfg.ProviderBurst, err = strconv.Atoi(Get("PROVIDER_BURST", "1")); err != nil {
		return Config{}, fmt.Errorf("load config: PROVIDER_BURST: %w", err)
	}

	cfg.DisplayLocation = time.Local
	if tz := os.Getenv("DISPLAY_TZ"); tz != "" {
		if cfg.DisplayLocation, err = time.LoadLocation(tz); err != nil {
			return Config{}, fmt.Errorf("load config: DISPLAY_TZ %q: %w", tz, err)
		}
	}

	switch cfg.GeocodeCache {
	case "", "memory", "redis":
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return Config{}, errors.New("load config: DATABASE_URL is required for the postgres geocode cache")
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown GEOCODE_CACHE %q", cfg.GeocodeCache)
	}

	return cfg, nil
}
