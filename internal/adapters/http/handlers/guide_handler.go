package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// GuideHandler serves guides and POI lookups.
type GuideHandler struct {
	service ports.GuideService
}

// NewGuideHandler creates a GuideHandler backed by the given service port.
func NewGuideHandler(service ports.GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

// GetGuide handles GET /api/v1/{lang}/guides/{slug}.
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	params := slugParams(r)
	if !validate(w, r, params) {
		return
	}

	view, err := h.service.GetGuide(r.Context(), params.Language, params.Slug)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeLocalizedJSON(w, view.Language, view)
}

// GetPOI handles GET /api/v1/{lang}/pois/{slug}.
func (h *GuideHandler) GetPOI(w http.ResponseWriter, r *http.Request) {
	params := slugParams(r)
	if !validate(w, r, params) {
		return
	}

	poi, served, err := h.service.GetPOI(r.Context(), params.Language, params.Slug)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeLocalizedJSON(w, served, dto.ToPOIResponse(served, poi))
}

// ListPOIs handles GET /api/v1/{lang}/pois?type=<category>.
func (h *GuideHandler) ListPOIs(w http.ResponseWriter, r *http.Request) {
	q := dto.CategoryQuery{
		Language: chi.URLParam(r, paramLanguage),
		Type:     r.URL.Query().Get(queryType),
	}
	if !validate(w, r, q) {
		return
	}

	pois, served, err := h.service.POIsByCategory(r.Context(), q.Language, q.Type)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeLocalizedJSON(w, served, dto.ToPOIListResponse(served, q.Type, pois))
}

// FeaturedRestaurants handles GET /api/v1/{lang}/restaurants/featured.
func (h *GuideHandler) FeaturedRestaurants(w http.ResponseWriter, r *http.Request) {
	params := dto.LanguageParams{Language: chi.URLParam(r, paramLanguage)}
	if !validate(w, r, params) {
		return
	}

	pois, served, err := h.service.FeaturedRestaurants(r.Context(), params.Language)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeLocalizedJSON(w, served, dto.ToPOIListResponse(served, "", pois))
}
