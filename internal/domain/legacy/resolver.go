// Package legacy resolves legacy third-party tour codes to their asset
// storage location and adapts legacy tour documents into the current guide
// schema.
package legacy

import (
	"strings"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// DefaultAssetHost is the object store serving legacy tour assets.
const DefaultAssetHost = "https://storage.googleapis.com"

// EnvProd selects the production asset bucket. Every other environment value
// resolves to the dev bucket.
const EnvProd = "prod"

const (
	minCodeSegments   = 3
	tourIDSegments    = 4
	prodBucket        = "laxy.travel"
	nonProdBucket     = "laxy.travel.dev"
	audioGuidePrefix  = "Audio Guide for "
	codeSegmentSep    = "-"
	defaultResolveEnv = "dev"
)

// TourConfig locates the legacy assets of the tour attached to a POI.
type TourConfig struct {
	TourID       string
	AssetBaseURL string
	POI          domain.POI
}

// ExtractTourID parses a legacy code such as "JPN-OITA-TUR-001-0001" into
// its tour identifier "JPN-OITA-TUR-001". Codes with fewer than three
// segments carry no tour and report false.
func ExtractTourID(code string) (string, bool) {
	parts := strings.Split(code, codeSegmentSep)
	if len(parts) < minCodeSegments {
		return "", false
	}
	if len(parts) > tourIDSegments {
		parts = parts[:tourIDSegments]
	}
	return strings.Join(parts, codeSegmentSep), true
}

// BuildAssetBaseURL returns the asset base URL of tourID on DefaultAssetHost.
func BuildAssetBaseURL(tourID, environment string) string {
	return assetBaseURL(DefaultAssetHost, tourID, environment)
}

func assetBaseURL(host, tourID, environment string) string {
	bucket := nonProdBucket
	if environment == EnvProd {
		bucket = prodBucket
	}
	return strings.TrimSuffix(host, "/") + "/" + bucket + "/tours/" + tourID + "/"
}

// Resolver derives tour configs for one deployment environment.
type Resolver struct {
	host        string
	environment string
}

// NewResolver creates a Resolver. An empty host selects DefaultAssetHost and
// an empty environment selects the dev bucket.
func NewResolver(host, environment string) *Resolver {
	if host == "" {
		host = DefaultAssetHost
	}
	if environment == "" {
		environment = defaultResolveEnv
	}
	return &Resolver{host: host, environment: environment}
}

// AssetBaseURL returns the asset base URL of tourID.
func (r *Resolver) AssetBaseURL(tourID string) string {
	return assetBaseURL(r.host, tourID, r.environment)
}

// ResolveTourConfig returns the tour config of a POI guide item, or false
// when the item has no usable legacy tour code.
func (r *Resolver) ResolveTourConfig(item domain.POIGuideItem) (TourConfig, bool) {
	if item.LegacyTourCode == "" {
		return TourConfig{}, false
	}
	tourID, ok := ExtractTourID(item.LegacyTourCode)
	if !ok {
		return TourConfig{}, false
	}
	return TourConfig{
		TourID:       tourID,
		AssetBaseURL: r.AssetBaseURL(tourID),
		POI:          item.POI,
	}, true
}
