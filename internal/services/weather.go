package services

import (
	"context"
	"fmt"
	"time"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// WeatherService fetches and normalizes current conditions and the forecast for a place.
type WeatherService struct {
	provider ports.WeatherProvider
	loc      *time.Location
}

// loc is the time zone forecast dates are labelled in; nil means time.Local.
func NewWeatherService(provider ports.WeatherProvider, loc *time.Location) *WeatherService {
	if loc == nil {
		loc = time.Local
	}
	return &WeatherService{provider: provider, loc: loc}
}

// FetchWeather issues the current-conditions and forecast calls concurrently and
// waits for both. If either fails the whole call fails and no partial report is returned.
func (s *WeatherService) FetchWeather(ctx context.Context, place domain.Place) (_ *domain.Report, err error) {
	defer obs.Time(ctx, "weather.FetchWeather")(&err)

	var (
		current  *ports.CurrentConditions
		forecast *ports.ForecastSeries
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.provider.CurrentConditions(gctx, place.Coordinates)
		if err != nil {
			return fmt.Errorf("current conditions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		forecast, err = s.provider.Forecast(gctx, place.Coordinates)
		if err != nil {
			return fmt.Errorf("forecast: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}

	weather, err := NormalizeCurrent(place, current)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}

	days, err := NormalizeForecast(forecast, s.loc)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}

	return &domain.Report{Weather: weather, Forecast: days}, nil
}
