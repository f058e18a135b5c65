// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// POIResponse is a single POI. The CMS object is passed through unchanged.
type POIResponse struct {
	Language string     `json:"language"`
	POI      domain.POI `json:"poi"`
}

// POIListResponse is a list of POIs in one language.
type POIListResponse struct {
	Language string       `json:"language"`
	Category string       `json:"category,omitempty"`
	POIs     []domain.POI `json:"pois"`
	Count    int          `json:"count"`
}

// ToPOIResponse wraps a POI with the language it was served in.
func ToPOIResponse(language string, poi *domain.POI) POIResponse {
	return POIResponse{
		Language: domain.NormalizeLanguage(language),
		POI:      *poi,
	}
}

// ToPOIListResponse wraps a POI list. A nil list is rendered as [].
func ToPOIListResponse(language, category string, pois []domain.POI) POIListResponse {
	if pois == nil {
		pois = []domain.POI{}
	}
	return POIListResponse{
		Language: domain.NormalizeLanguage(language),
		Category: category,
		POIs:     pois,
		Count:    len(pois),
	}
}
