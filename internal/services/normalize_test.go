package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
	"weather-page-service/internal/adapters/fake"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-01-05 00:00:00 UTC, a Sunday.
const jan5 int64 = 1736035200

var austin = domain.Place{
	City:        "Austin",
	Region:      "TX",
	Country:     "United States",
	Coordinates: domain.Coordinates{Lat: 30.2672, Lon: -97.7431},
}

func decodeCurrent(t *testing.T, body string) *ports.CurrentConditions {
	t.Helper()
	var c ports.CurrentConditions
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	return &c
}

func TestPressureInHg(t *testing.T) {
	cases := map[float64]string{
		1013: "29.91",
		1000: "29.53",
		980:  "28.94",
		0:    "0.00",
	}
	for hPa, want := range cases {
		assert.Equal(t, want, PressureInHg(hPa), "hPa=%v", hPa)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		72.4:  72,
		72.5:  73,
		72.6:  73,
		-2.5:  -2,
		-2.6:  -3,
		-0.4:  0,
		100.0: 100,
	}
	for in, want := range cases {
		assert.Equal(t, want, roundHalfUp(in), "in=%v", in)
	}
}

func TestNormalizeCurrentWithoutOptionalObjects(t *testing.T) {
	c := decodeCurrent(t, `{
		"main": {"temp": 72.4, "feels_like": 71.5, "temp_min": 69.9, "temp_max": 75.2, "pressure": 1013, "humidity": 41},
		"weather": [{"icon": "02d", "description": "few clouds"}, {"icon": "50d", "description": "mist"}]
	}`)

	got, err := NormalizeCurrent(austin, c)
	require.NoError(t, err)

	assert.Equal(t, "Austin, TX, United States", got.Location)
	assert.Equal(t, 72, got.Temperature)
	assert.Equal(t, 72, got.FeelsLike)
	assert.Equal(t, 70, got.TempMin)
	assert.Equal(t, 75, got.TempMax)
	assert.Equal(t, 41, got.Humidity)
	assert.Equal(t, "29.91", got.Pressure.InHg)
	assert.Equal(t, "N/A", got.Wind.Speed.String())
	assert.Equal(t, "N/A", got.Wind.Deg.String())
	assert.Equal(t, 0.0, got.Rain)
	assert.Equal(t, "N/A", got.Clouds.String())
	assert.Equal(t, "02d", got.WeatherIcon)
	assert.Equal(t, "few clouds", got.WeatherDescription)
}

func TestNormalizeCurrentWithOptionalObjects(t *testing.T) {
	c := decodeCurrent(t, `{
		"main": {"temp": 60, "feels_like": 58, "temp_min": 55, "temp_max": 62, "pressure": 1000, "humidity": 90},
		"wind": {"speed": 12.66, "deg": 240},
		"rain": {"1h": 0.42},
		"clouds": {"all": 100},
		"weather": [{"icon": "10d", "description": "moderate rain"}]
	}`)

	got, err := NormalizeCurrent(austin, c)
	require.NoError(t, err)

	speed, ok := got.Wind.Speed.Value()
	require.True(t, ok)
	assert.Equal(t, 12.66, speed)
	assert.Equal(t, "240", got.Wind.Deg.String())
	assert.Equal(t, 0.42, got.Rain)
	assert.Equal(t, "100", got.Clouds.String())
}

func TestNormalizeCurrentRainCollapsesToZero(t *testing.T) {
	bodies := map[string]string{
		"no rain object":    `{"main": {}, "weather": [{"icon": "01d"}]}`,
		"rain without 1h":   `{"main": {}, "rain": {"3h": 1.2}, "weather": [{"icon": "01d"}]}`,
		"rain with zero 1h": `{"main": {}, "rain": {"1h": 0}, "weather": [{"icon": "01d"}]}`,
		"empty rain object": `{"main": {}, "rain": {}, "weather": [{"icon": "01d"}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeCurrent(austin, decodeCurrent(t, body))
			require.NoError(t, err)
			assert.Equal(t, 0.0, got.Rain)
		})
	}
}

func TestNormalizeCurrentPartialWind(t *testing.T) {
	c := decodeCurrent(t, `{"main": {}, "wind": {"speed": 3}, "weather": [{"icon": "01d"}]}`)

	got, err := NormalizeCurrent(austin, c)
	require.NoError(t, err)
	assert.Equal(t, "3", got.Wind.Speed.String())
	assert.Equal(t, "N/A", got.Wind.Deg.String())
}

func TestNormalizeCurrentEmptyConditions(t *testing.T) {
	c := decodeCurrent(t, `{"main": {"temp": 50}, "weather": []}`)

	_, err := NormalizeCurrent(austin, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoConditions))
	assert.False(t, errors.Is(err, domain.ErrUpstream))
	assert.False(t, errors.Is(err, domain.ErrValidation))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestNormalizeForecastFiveDays(t *testing.T) {
	series := fake.Series(40, jan5, 50.4)

	got, err := NormalizeForecast(series, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []domain.ForecastEntry{
		{Date: "Sun, Jan 5", Temp: 50, Icon: "01d", Description: "clear sky"},
		{Date: "Mon, Jan 6", Temp: 58, Icon: "01d", Description: "clear sky"},
		{Date: "Tue, Jan 7", Temp: 66, Icon: "01d", Description: "clear sky"},
		{Date: "Wed, Jan 8", Temp: 74, Icon: "01d", Description: "clear sky"},
		{Date: "Thu, Jan 9", Temp: 82, Icon: "01d", Description: "clear sky"},
	}, got)
}

func TestNormalizeForecastSelectsEveryEighthSample(t *testing.T) {
	for n := 0; n <= 50; n++ {
		series := fake.Series(n, jan5, 0)

		got, err := NormalizeForecast(series, time.UTC)
		require.NoError(t, err)

		want := (n + samplesPerDay - 1) / samplesPerDay
		if want > forecastDays {
			want = forecastDays
		}
		require.Len(t, got, want, "n=%d", n)

		for i, e := range got {
			assert.Equal(t, i*samplesPerDay, e.Temp, "n=%d entry=%d should come from sample %d", n, i, i*samplesPerDay)
		}
	}
}

func TestNormalizeForecastDateUsesLocation(t *testing.T) {
	series := fake.Series(1, jan5, 10)
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := NormalizeForecast(series, ny)
	require.NoError(t, err)
	assert.Equal(t, "Sat, Jan 4", got[0].Date)
}

func TestNormalizeForecastEmptyConditions(t *testing.T) {
	series := fake.Series(9, jan5, 10)
	series.List[8].Weather = nil

	_, err := NormalizeForecast(series, time.UTC)
	assert.True(t, errors.Is(err, ErrNoConditions))
}

func TestNormalizeForecastIgnoresUnselectedSamples(t *testing.T) {
	series := fake.Series(9, jan5, 10)
	series.List[3].Weather = nil
	series.List[5].Main = nil

	got, err := NormalizeForecast(series, time.UTC)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
