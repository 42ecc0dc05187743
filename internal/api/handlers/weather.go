package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
)

const (
	fetchFailedMessage = "Error fetching weather data"
	notFoundMessage    = "Location not found"
)

type LocationResolver interface {
	ResolveByIP(ctx context.Context) (domain.Place, error)
	ResolveByQuery(ctx context.Context, raw string) (domain.Place, error)
}

type WeatherFetcher interface {
	FetchWeather(ctx context.Context, place domain.Place) (*domain.Report, error)
}

// WeatherHandler serves the weather page for the caller's location or a searched one.
type WeatherHandler struct {
	Resolver LocationResolver
	Weather  WeatherFetcher
	Page     *template.Template
}

// Index resolves the caller by network address.
func (h *WeatherHandler) Index(w http.ResponseWriter, r *http.Request) {
	place, err := h.Resolver.ResolveByIP(r.Context())
	if err != nil {
		h.fail(w, r, "", err)
		return
	}

	h.render(w, r, "", place)
}

// Search resolves the free-text ?location= query.
func (h *WeatherHandler) Search(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("location")

	place, err := h.Resolver.ResolveByQuery(r.Context(), raw)
	if err != nil {
		h.fail(w, r, raw, err)
		return
	}

	h.render(w, r, raw, place)
}

func (h *WeatherHandler) render(w http.ResponseWriter, r *http.Request, query string, place domain.Place) {
	report, err := h.Weather.FetchWeather(r.Context(), place)
	if err != nil {
		h.fail(w, r, query, err)
		return
	}

	writePage(w, r, h.Page, http.StatusOK, PageData{
		WeatherData:  &report.Weather,
		ForecastData: report.Forecast,
		Query:        query,
	})
}

// fail renders the page with an error and no weather data.
// Validation keeps 200, not found is 404, everything else is 500.
func (h *WeatherHandler) fail(w http.ResponseWriter, r *http.Request, query string, err error) {
	log.Printf("req_id=%s path=%s error: %v", obs.RequestID(r.Context()), r.URL.Path, err)

	data := PageData{Query: query}
	status := http.StatusInternalServerError

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusOK
		data.Error = ve.Msg
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		data.Error = notFoundMessage + ": " + strings.TrimSpace(query)
	default:
		data.Error = fetchFailedMessage
	}

	writePage(w, r, h.Page, status, data)
}
