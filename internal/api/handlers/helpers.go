package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"weather-page-service/internal/domain"
	"weather-page-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// PageData is what the weather page template renders.
// WeatherData and ForecastData are set together, or neither is when Error is set.
type PageData struct {
	WeatherData  *domain.CurrentWeather
	ForecastData []domain.ForecastEntry
	Error        string
	Query        string
}

// writePage renders into a buffer first so a template failure never leaves a half-written page.
func writePage(w http.ResponseWriter, r *http.Request, page *template.Template, status int, data PageData) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		log.Printf("req_id=%s render failed: path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("req_id=%s write failed: path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
	}
}
