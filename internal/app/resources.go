package app

import (
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain/query"
)

// Suites mirrored from the CMS.
const (
	SuiteConfig    = "config"
	SuitePOIGuides = "poi-guides"
	SuitePOIs      = "pois"
)

var (
	imageFields = query.FieldSpec{Fields: []string{"url", "alternativeText", "width", "height"}}
	poiFields   = []string{"documentId", "label", "slug", "type"}
)

// configComponents is the shape of the client config single type.
func configComponents() *query.Components {
	return query.NewComponents(
		query.Rel("branding", query.FieldSpec{
			Fields:   []string{"name", "primaryColor", "secondaryColor"},
			Populate: query.Populate(query.Rel("logo", imageFields)),
		}),
		query.Rel("homeHero", query.FieldSpec{
			Fields:   []string{"title", "subtitle"},
			Populate: query.Populate(query.Rel("image", imageFields)),
		}),
		query.Rel("navigation", query.FieldSpec{
			Fields: []string{"label", "href", "order"},
		}),
		query.Rel("featuredRestaurants", query.FieldSpec{
			Fields: poiFields,
			Populate: query.Populate(
				query.Rel("thumbnail", imageFields),
			),
		}),
	)
}

// Resources returns the CMS resources mirrored into the store, in fetch
// order. Output directories are rooted at root.
func Resources(root string) []domain.Endpoint {
	return []domain.Endpoint{
		domain.NewEndpoint(SuiteConfig, "api/config",
			query.BuildNested(configComponents()), root, false),
		domain.NewEndpoint(SuitePOIGuides, "api/poi-guides",
			query.BuildDirect(query.FieldSpec{
				Fields: []string{"legacyTourCode"},
				Populate: query.Populate(
					query.Rel("poi", query.FieldSpec{
						Fields:   poiFields,
						Populate: query.Populate(query.Rel("thumbnail", imageFields)),
					}),
				),
			}), root, true),
		domain.NewEndpoint(SuitePOIs, "api/pois",
			query.BuildDirect(query.FieldSpec{
				Fields: append([]string{"description", "address"}, poiFields...),
				Populate: query.Populate(
					query.Rel("thumbnail", imageFields),
					query.Rel("location", query.FieldSpec{Fields: []string{"latitude", "longitude"}}),
				),
			}), root, true),
	}
}
