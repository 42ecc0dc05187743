package ports

import (
	"context"
	"weather-page-service/internal/domain"
)

// Raw current-conditions payload. Optional provider objects stay nil when absent.
type CurrentConditions struct {
	Main    *MainReadings  `json:"main"`
	Wind    *WindReadings  `json:"wind"`
	Rain    *RainReadings  `json:"rain"`
	Clouds  *CloudReadings `json:"clouds"`
	Weather []Condition    `json:"weather"`
}

type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type WindReadings struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
}

type RainReadings struct {
	OneHour *float64 `json:"1h"`
}

type CloudReadings struct {
	All *float64 `json:"all"`
}

type Condition struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Raw 3-hour-interval forecast payload.
type ForecastSeries struct {
	List []ForecastSample `json:"list"`
}

type ForecastSample struct {
	Dt      int64         `json:"dt"`
	Main    *MainReadings `json:"main"`
	Weather []Condition   `json:"weather"`
}

// Contract for the weather provider. Both calls use imperial units.
type WeatherProvider interface {
	CurrentConditions(ctx context.Context, at domain.Coordinates) (*CurrentConditions, error)
	Forecast(ctx context.Context, at domain.Coordinates) (*ForecastSeries, error)
}
