package api

import (
	"fmt"
	"net/http"
	"weather-page-service/internal/api/handlers"
	"weather-page-service/internal/web"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(resolver handlers.LocationResolver, weather handlers.WeatherFetcher) (http.Handler, error) {
	page, err := web.ParsePage()
	if err != nil {
		return nil, fmt.Errorf("new router: parse page template: %w", err)
	}

	weatherHandler := &handlers.WeatherHandler{
		Resolver: resolver,
		Weather:  weather,
		Page:     page,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", weatherHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/search", weatherHandler.Search).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))),
	).Methods(http.MethodGet)

	return requestIDMiddleware(loggingMiddleware(r)), nil
}
