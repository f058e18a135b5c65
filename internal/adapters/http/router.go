// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes and
// methods are answered with problem responses.
func NewRouter(
	guideHandler *handlers.GuideHandler,
	schemaHandler *handlers.SchemaHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatusResponse(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatusResponse(w, req, http.StatusMethodNotAllowed, req.Method+" is not allowed on "+req.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/schema/guide", schemaHandler.Guide)

		// Localized read-only content.
		r.Route("/{lang}", func(r chi.Router) {
			r.Get("/guides/{slug}", guideHandler.GetGuide)
			r.Get("/pois", guideHandler.ListPOIs)
			r.Get("/pois/{slug}", guideHandler.GetPOI)
			r.Get("/restaurants/featured", guideHandler.FeaturedRestaurants)
		})
	})

	return r
}
