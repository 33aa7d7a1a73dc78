package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trip-fuel-service/internal/api/handlers"
	"trip-fuel-service/internal/domain"
	"trip-fuel-service/internal/metrics"
	"trip-fuel-service/internal/ports"
	"trip-fuel-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(builder *services.TripReportBuilder, geocoder ports.Geocoder, tables domain.FuelTables) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Builder: builder,
		Guard:   &services.SessionGuard{},
	}
	locationHandler := &handlers.LocationHandler{Geocoder: geocoder}
	optionsHandler := &handlers.OptionsHandler{Tables: tables}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips/estimate", tripHandler.Estimate)
	mux.HandleFunc("/locations/reverse", locationHandler.Reverse)
	mux.HandleFunc("/options", optionsHandler.List)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
