package legacy

import "github.com/jsamuelsen11/guide-content-pipeline/internal/domain"

// View resolves an adapted guide for one display language. Steps keep their
// source position; Order is carried through untouched.
func View(guide *domain.AdaptedGuide, cfg TourConfig, language string, available []string) *domain.GuideView {
	steps := make([]domain.StepView, len(guide.Guide.Steps))
	for i, s := range guide.Guide.Steps {
		steps[i] = domain.StepView{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Duration:    s.Duration,
			Order:       s.Order,
			Assets:      ResolveStepAssets(s, language, cfg.AssetBaseURL),
		}
	}
	if available == nil {
		available = []string{}
	}

	return &domain.GuideView{
		POI:                guide.POI,
		ID:                 guide.Guide.ID,
		Title:              guide.Guide.Title,
		Description:        guide.Guide.Description,
		Language:           language,
		AvailableLanguages: available,
		AssetBaseURL:       cfg.AssetBaseURL,
		Steps:              steps,
	}
}
