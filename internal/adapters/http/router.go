// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/skysearch/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	sessionHandler *handlers.SessionHandler,
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/passenger-categories", catalogHandler.ListPassengerCategories)

		r.Post("/sessions", sessionHandler.CreateSession)
		r.Get("/sessions/{id}", sessionHandler.GetSession)
		r.Delete("/sessions/{id}", sessionHandler.DeleteSession)

		r.Patch("/sessions/{id}/filters", sessionHandler.UpdateFilters)
		r.Post("/sessions/{id}/passengers/{category}/increment", sessionHandler.IncrementPassenger)
		r.Post("/sessions/{id}/passengers/{category}/decrement", sessionHandler.DecrementPassenger)

		// Airport lookup is debounced; poll GET airports for the options.
		r.Post("/sessions/{id}/airports/query", sessionHandler.QueueAirportQuery)
		r.Get("/sessions/{id}/airports", sessionHandler.GetAirports)
		r.Put("/sessions/{id}/origin", sessionHandler.SelectOrigin)
		r.Put("/sessions/{id}/destination", sessionHandler.SelectDestination)

		r.Post("/sessions/{id}/search", sessionHandler.Submit)
		r.Get("/sessions/{id}/results", sessionHandler.GetResults)
	})

	return r
}
