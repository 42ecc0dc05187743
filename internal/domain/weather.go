package domain

// Pressure in display units. InHg is a fixed two-decimal string.
type Pressure struct {
	InHg string `json:"inHg"`
}

// Wind speed (mph) and direction (degrees); each is "N/A" when the provider omitted wind.
type Wind struct {
	Speed Measure `json:"speed"`
	Deg   Measure `json:"deg"`
}

// Represents current conditions reshaped for display.
// Temperatures are Fahrenheit, rounded to the nearest integer.
type CurrentWeather struct {
	Location           string   `json:"location"`
	Temperature        int      `json:"temperature"`
	FeelsLike          int      `json:"feelsLike"`
	TempMin            int      `json:"tempMin"`
	TempMax            int      `json:"tempMax"`
	Humidity           int      `json:"humidity"`
	Pressure           Pressure `json:"pressure"`
	Wind               Wind     `json:"wind"`
	Rain               float64  `json:"rain"`
	Clouds             Measure  `json:"clouds"`
	WeatherIcon        string   `json:"weatherIcon"`
	WeatherDescription string   `json:"weatherDescription"`
}

// Represents one selected day of the forecast series.
type ForecastEntry struct {
	Date        string `json:"date"`
	Temp        int    `json:"temp"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Report pairs current conditions with the forecast series.
// Both are produced by one normalization call or neither is.
type Report struct {
	Weather  CurrentWeather  `json:"weatherData"`
	Forecast []ForecastEntry `json:"forecastData"`
}
