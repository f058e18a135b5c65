package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain/legacy"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain/suite"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// Compile-time check that GuideService implements ports.GuideService.
var _ ports.GuideService = (*GuideService)(nil)

// GuideService implements ports.GuideService over the mock store and the
// legacy asset store. Lookups run against the ingested suites; guides are
// loaded from the legacy tour behind the matching POI guide.
type GuideService struct {
	store    ports.ContentStore
	tours    ports.LegacyTourClient
	resolver *legacy.Resolver
	logger   *slog.Logger
}

// NewGuideService creates a GuideService. A nil logger discards output.
func NewGuideService(store ports.ContentStore, tours ports.LegacyTourClient, resolver *legacy.Resolver, logger *slog.Logger) *GuideService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GuideService{
		store:    store,
		tours:    tours,
		resolver: resolver,
		logger:   logger,
	}
}

// GetGuide resolves the legacy tour of the POI guide with the given slug and
// returns it adapted to the current schema with assets for language.
func (s *GuideService) GetGuide(ctx context.Context, language, slug string) (*domain.GuideView, error) {
	lang := domain.NormalizeLanguage(language)
	s.logger.InfoContext(ctx, "loading guide", slog.String("slug", slug), slog.String("language", lang))

	coll, _, err := s.store.Collection(SuitePOIGuides, lang)
	if err != nil {
		return nil, s.fail(ctx, "GetGuide", slug, err)
	}

	item, ok := suite.FindGuideItem(coll, slug)
	if !ok {
		return nil, fmt.Errorf("guide %q: %w", slug, domain.ErrNotFound)
	}

	cfg, ok := s.resolver.ResolveTourConfig(item)
	if !ok {
		s.logger.WarnContext(ctx, "poi guide has no usable legacy tour",
			slog.String("slug", slug),
			slog.String("legacy_tour_code", item.LegacyTourCode),
		)
		return nil, fmt.Errorf("legacy tour for guide %q: %w", slug, domain.ErrNotFound)
	}

	doc, err := s.tours.LoadTour(ctx, cfg.AssetBaseURL)
	if err != nil {
		return nil, s.fail(ctx, "GetGuide", slug, err)
	}

	adapted, err := legacy.Adapt(doc, cfg)
	if err != nil {
		return nil, s.fail(ctx, "GetGuide", slug, err)
	}

	return legacy.View(adapted, cfg, lang, legacy.DiscoverAvailableLanguages(doc)), nil
}

// GetPOI returns the POI referenced by the POI guide with the given slug
// and the language the POI guides were served in.
func (s *GuideService) GetPOI(ctx context.Context, language, slug string) (*domain.POI, string, error) {
	lang := domain.NormalizeLanguage(language)

	coll, served, err := s.store.Collection(SuitePOIGuides, lang)
	if err != nil {
		return nil, "", s.fail(ctx, "GetPOI", slug, err)
	}
	s.noteFallback(ctx, SuitePOIGuides, lang, served)

	poi, ok := suite.FindBySlug(coll, slug)
	if !ok {
		return nil, "", fmt.Errorf("poi %q: %w", slug, domain.ErrNotFound)
	}
	return &poi, served, nil
}

// POIsByCategory returns the POIs whose type equals category. An unknown
// category yields an empty slice.
func (s *GuideService) POIsByCategory(ctx context.Context, language, category string) ([]domain.POI, string, error) {
	lang := domain.NormalizeLanguage(language)

	coll, served, err := s.store.Collection(SuitePOIs, lang)
	if err != nil {
		return nil, "", s.fail(ctx, "POIsByCategory", category, err)
	}
	s.noteFallback(ctx, SuitePOIs, lang, served)

	return suite.FilterByCategory(coll, category), served, nil
}

// FeaturedRestaurants returns the restaurant POIs.
func (s *GuideService) FeaturedRestaurants(ctx context.Context, language string) ([]domain.POI, string, error) {
	return s.POIsByCategory(ctx, language, suite.CategoryRestaurant)
}

func (s *GuideService) noteFallback(ctx context.Context, suiteID, requested, served string) {
	if served == requested {
		return
	}
	s.logger.DebugContext(ctx, "serving default language",
		slog.String("suite_id", suiteID),
		slog.String("requested", requested),
		slog.String("served", served),
	)
}

func (s *GuideService) fail(ctx context.Context, op, key string, err error) error {
	s.logger.ErrorContext(ctx, "guide lookup failed",
		slog.String("operation", op),
		slog.String("key", key),
		slog.Any("error", err),
	)
	return err
}
