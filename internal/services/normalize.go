package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/ports"
)

const (
	// Inches of mercury per hectopascal.
	hPaToInHg = 0.02953

	// The provider reports every 3 hours, so 8 samples span a day.
	samplesPerDay = 8
	forecastDays  = 5

	forecastDateLayout = "Mon, Jan 2"
)

// ErrNoConditions marks a provider payload with an empty weather-condition list.
// It is a fault, not one of the request-level error kinds.
var ErrNoConditions = errors.New("no weather conditions in payload")

// roundHalfUp rounds to the nearest integer with .5 going towards +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// PressureInHg converts hectopascals to inches of mercury as a fixed two-decimal string.
func PressureInHg(hPa float64) string {
	return strconv.FormatFloat(hPa*hPaToInHg, 'f', 2, 64)
}

// NormalizeCurrent reshapes a current-conditions payload for display.
func NormalizeCurrent(place domain.Place, c *ports.CurrentConditions) (domain.CurrentWeather, error) {
	if c == nil || c.Main == nil {
		return domain.CurrentWeather{}, errors.New("normalize current: missing main readings")
	}
	if len(c.Weather) == 0 {
		return domain.CurrentWeather{}, fmt.Errorf("normalize current: %w", ErrNoConditions)
	}

	out := domain.CurrentWeather{
		Location:           place.Label(),
		Temperature:        roundHalfUp(c.Main.Temp),
		FeelsLike:          roundHalfUp(c.Main.FeelsLike),
		TempMin:            roundHalfUp(c.Main.TempMin),
		TempMax:            roundHalfUp(c.Main.TempMax),
		Humidity:           c.Main.Humidity,
		Pressure:           domain.Pressure{InHg: PressureInHg(c.Main.Pressure)},
		Wind:               domain.Wind{Speed: domain.None(), Deg: domain.None()},
		Clouds:             domain.None(),
		WeatherIcon:        c.Weather[0].Icon,
		WeatherDescription: c.Weather[0].Description,
	}

	if c.Wind != nil {
		out.Wind.Speed = domain.MeasureOf(c.Wind.Speed)
		out.Wind.Deg = domain.MeasureOf(c.Wind.Deg)
	}

	// An absent rain object and one without the 1h field both read as zero.
	if c.Rain != nil && c.Rain.OneHour != nil {
		out.Rain = *c.Rain.OneHour
	}

	if c.Clouds != nil {
		out.Clouds = domain.MeasureOf(c.Clouds.All)
	}

	return out, nil
}

// NormalizeForecast keeps samples 0, 8, 16, 24 and 32 (those that exist), one per day
// at the series' starting time of day. Dates are labelled in loc.
func NormalizeForecast(f *ports.ForecastSeries, loc *time.Location) ([]domain.ForecastEntry, error) {
	if f == nil {
		return nil, errors.New("normalize forecast: missing series")
	}
	if loc == nil {
		loc = time.Local
	}

	out := make([]domain.ForecastEntry, 0, forecastDays)
	for i := 0; i < len(f.List) && len(out) < forecastDays; i += samplesPerDay {
		s := f.List[i]
		if s.Main == nil {
			return nil, fmt.Errorf("normalize forecast: sample %d: missing main readings", i)
		}
		if len(s.Weather) == 0 {
			return nil, fmt.Errorf("normalize forecast: sample %d: %w", i, ErrNoConditions)
		}

		out = append(out, domain.ForecastEntry{
			Date:        time.Unix(s.Dt, 0).In(loc).Format(forecastDateLayout),
			Temp:        roundHalfUp(s.Main.Temp),
			Icon:        s.Weather[0].Icon,
			Description: s.Weather[0].Description,
		})
	}

	return out, nil
}
