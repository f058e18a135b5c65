package ports

import (
	"context"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// GuideService serves guide and POI lookups over the ingested content.
// Implemented by the application layer; called by inbound HTTP handlers.
// Language arguments are display codes and are normalized by the service.
type GuideService interface {
	// GetGuide loads the legacy tour behind the POI guide with the given
	// slug and resolves its assets for language.
	// Returns domain.ErrNotFound if no guide matches the slug and
	// domain.ErrInvalidLegacyDocument if the tour data does not validate.
	GetGuide(ctx context.Context, language, slug string) (*domain.GuideView, error)

	// GetPOI returns the POI with the given slug and the language it was
	// served in, which is the default language when language was never
	// ingested. Returns domain.ErrNotFound if no POI matches.
	GetPOI(ctx context.Context, language, slug string) (poi *domain.POI, served string, err error)

	// POIsByCategory returns the POIs whose type equals category and the
	// language they were served in.
	POIsByCategory(ctx context.Context, language, category string) (pois []domain.POI, served string, err error)

	// FeaturedRestaurants returns the POIs of the restaurant category and
	// the language they were served in.
	FeaturedRestaurants(ctx context.Context, language string) (pois []domain.POI, served string, err error)
}
