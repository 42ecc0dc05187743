package openweather

import (
	"context"
	"strconv"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"
)

var _ ports.WeatherProvider = (*Client)(nil)

func coordQuery(at domain.Coordinates) map[string]string {
	return map[string]string{
		"lat":   strconv.FormatFloat(at.Lat, 'f', -1, 64),
		"lon":   strconv.FormatFloat(at.Lon, 'f', -1, 64),
		"units": "imperial",
	}
}

// CurrentConditions fetches /weather for the coordinates.
func (c *Client) CurrentConditions(
	ctx context.Context,
	at domain.Coordinates,
) (_ *ports.CurrentConditions, err error) {
	defer obs.Time(ctx, "openweather.CurrentConditions")(&err)

	var out ports.CurrentConditions
	if err := c.getJSON(ctx, c.baseURL+"/weather", coordQuery(at), &out); err != nil {
		return nil, err
	}
	if out.Main == nil {
		return nil, malformed("current conditions without main readings")
	}

	return &out, nil
}

// Forecast fetches the 5 day / 3 hour /forecast series for the coordinates.
func (c *Client) Forecast(
	ctx context.Context,
	at domain.Coordinates,
) (_ *ports.ForecastSeries, err error) {
	defer obs.Time(ctx, "openweather.Forecast")(&err)

	var out ports.ForecastSeries
	if err := c.getJSON(ctx, c.baseURL+"/forecast", coordQuery(at), &out); err != nil {
		return nil, err
	}
	if out.List == nil {
		return nil, malformed("forecast without list")
	}
	for i, s := range out.List {
		if s.Main == nil {
			return nil, malformed("forecast sample %d without main readings", i)
		}
	}

	return &out, nil
}
