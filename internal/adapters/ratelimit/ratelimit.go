package ratelimit

import (
	"context"
	"fmt"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/ports"

	"golang.org/x/time/rate"
)

// NewLimiter returns nil when rps is not positive, which disables limiting.
// rps may be fractional for less than one request per second.
func NewLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func wait(ctx context.Context, l *rate.Limiter) error {
	if l == nil {
		return nil
	}
	if err := l.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}

// WeatherProvider wraps a ports.WeatherProvider with a limiter shared across calls.
type WeatherProvider struct {
	provider ports.WeatherProvider
	limiter  *rate.Limiter
}

func NewWeatherProvider(provider ports.WeatherProvider, limiter *rate.Limiter) *WeatherProvider {
	return &WeatherProvider{provider: provider, limiter: limiter}
}

func (p *WeatherProvider) CurrentConditions(ctx context.Context, at domain.Coordinates) (*ports.CurrentConditions, error) {
	if err := wait(ctx, p.limiter); err != nil {
		return nil, err
	}
	return p.provider.CurrentConditions(ctx, at)
}

func (p *WeatherProvider) Forecast(ctx context.Context, at domain.Coordinates) (*ports.ForecastSeries, error) {
	if err := wait(ctx, p.limiter); err != nil {
		return nil, err
	}
	return p.provider.Forecast(ctx, at)
}

// Geocoder wraps a ports.Geocoder. Pass the weather limiter when both hit the same quota.
type Geocoder struct {
	geocoder ports.Geocoder
	limiter  *rate.Limiter
}

func NewGeocoder(geocoder ports.Geocoder, limiter *rate.Limiter) *Geocoder {
	return &Geocoder{geocoder: geocoder, limiter: limiter}
}

func (g *Geocoder) Geocode(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	if err := wait(ctx, g.limiter); err != nil {
		return nil, err
	}
	return g.geocoder.Geocode(ctx, query, limit)
}

var (
	_ ports.WeatherProvider = (*WeatherProvider)(nil)
	_ ports.Geocoder        = (*Geocoder)(nil)
)
