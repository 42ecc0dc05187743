package fake

import (
	"context"
	"sync"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/ports"
)

// IPLocator returns a fixed place or error and counts calls.
type IPLocator struct {
	Place domain.Place
	Err   error

	mu    sync.Mutex
	calls int
}

func (l *IPLocator) LocateByIP(ctx context.Context) (domain.Place, error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return l.Place, l.Err
}

func (l *IPLocator) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// Geocoder answers from a query -> places table and records the queries it saw.
type Geocoder struct {
	Matches map[string][]domain.Place
	Err     error

	mu      sync.Mutex
	queries []string
}

func (g *Geocoder) Geocode(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	g.mu.Lock()
	g.queries = append(g.queries, query)
	g.mu.Unlock()

	if g.Err != nil {
		return nil, g.Err
	}
	m := g.Matches[query]
	if limit > 0 && len(m) > limit {
		m = m[:limit]
	}
	return m, nil
}

func (g *Geocoder) Queries() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.queries...)
}

// WeatherProvider returns canned payloads and records the coordinates it was asked for.
type WeatherProvider struct {
	Current     *ports.CurrentConditions
	Series      *ports.ForecastSeries
	CurrentErr  error
	ForecastErr error

	mu    sync.Mutex
	calls []domain.Coordinates
}

func (p *WeatherProvider) record(at domain.Coordinates) {
	p.mu.Lock()
	p.calls = append(p.calls, at)
	p.mu.Unlock()
}

func (p *WeatherProvider) CurrentConditions(ctx context.Context, at domain.Coordinates) (*ports.CurrentConditions, error) {
	p.record(at)
	if p.CurrentErr != nil {
		return nil, p.CurrentErr
	}
	return p.Current, nil
}

func (p *WeatherProvider) Forecast(ctx context.Context, at domain.Coordinates) (*ports.ForecastSeries, error) {
	p.record(at)
	if p.ForecastErr != nil {
		return nil, p.ForecastErr
	}
	return p.Series, nil
}

func (p *WeatherProvider) Calls() []domain.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Coordinates(nil), p.calls...)
}

// Series builds n forecast samples three hours apart starting at start (unix seconds).
// Sample i has temperature base+i.
func Series(n int, start int64, base float64) *ports.ForecastSeries {
	list := make([]ports.ForecastSample, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, ports.ForecastSample{
			Dt:      start + int64(i)*3*60*60,
			Main:    &ports.MainReadings{Temp: base + float64(i)},
			Weather: []ports.Condition{{Icon: "01d", Description: "clear sky"}},
		})
	}
	return &ports.ForecastSeries{List: list}
}

var (
	_ ports.IPLocator       = (*IPLocator)(nil)
	_ ports.Geocoder        = (*Geocoder)(nil)
	_ ports.WeatherProvider = (*WeatherProvider)(nil)
)
