// Package handlers implements the inbound HTTP handlers of the guide API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// Route parameter names.
const (
	paramLanguage = "lang"
	paramSlug     = "slug"
	queryType     = "type"
)

// headerContentLanguage reports the language a response was served in,
// which differs from the path when an unsupported tag or an unpublished
// locale falls back.
const headerContentLanguage = "Content-Language"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeLocalizedJSON writes a 200 JSON response tagged with the normalized
// served language.
func writeLocalizedJSON(w http.ResponseWriter, language string, v any) {
	w.Header().Set(headerContentLanguage, domain.NormalizeLanguage(language))
	writeJSON(w, http.StatusOK, v)
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// validate writes an error response and returns false when params are
// invalid.
func validate(w http.ResponseWriter, r *http.Request, params validatable) bool {
	if err := params.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func slugParams(r *http.Request) dto.SlugParams {
	return dto.SlugParams{
		Language: chi.URLParam(r, paramLanguage),
		Slug:     chi.URLParam(r, paramSlug),
	}
}
