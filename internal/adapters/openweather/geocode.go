package openweather

import (
	"context"
	"strconv"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
	"weather-page-service/internal/ports"
)

var _ ports.Geocoder = (*Client)(nil)

type geocodeMatch struct {
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Country string   `json:"country"`
	State   string   `json:"state"`
}

// Geocode resolves a "city[,state][,country]" query with /direct.
// A missing state is valid; not every country models one.
func (c *Client) Geocode(
	ctx context.Context,
	query string,
	limit int,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "openweather.Geocode")(&err)

	q := map[string]string{
		"q":     query,
		"limit": strconv.Itoa(limit),
	}

	var decoded []geocodeMatch
	if err := c.getJSON(ctx, c.geoURL+"/direct", q, &decoded); err != nil {
		return nil, err
	}

	out := make([]domain.Place, 0, len(decoded))
	for i, m := range decoded {
		if m.Lat == nil || m.Lon == nil {
			return nil, malformed("geocode match %d without coordinates", i)
		}
		out = append(out, domain.Place{
			City:        m.Name,
			Region:      m.State,
			Country:     m.Country,
			Coordinates: domain.Coordinates{Lat: *m.Lat, Lon: *m.Lon},
		})
	}

	return out, nil
}
