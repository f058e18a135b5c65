package ports

import (
	"context"
	"io"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain/legacy"
)

// ContentFetcher retrieves one CMS resource in one language and mirrors it
// into the mock store. Implemented by the CMS adapter; called by the
// ingestion service. Fetch reports every outcome through the result and
// never returns an error separately.
type ContentFetcher interface {
	Fetch(ctx context.Context, endpoint domain.Endpoint, language string) domain.FetchResult
}

// ContentStore reads ingested CMS documents. Implemented by the mock store.
type ContentStore interface {
	// Collection returns the suite's item array for language, falling back
	// to the default language, and the language it served. Returns
	// domain.ErrNotFound when the suite was never ingested.
	Collection(suiteID, language string) (items []byte, served string, err error)
}

// ManifestWriter persists the index of an ingestion run.
type ManifestWriter interface {
	WriteManifest(m *domain.Manifest) error
}

// LegacyTourClient reads tours from the legacy asset store.
type LegacyTourClient interface {
	// LoadTour fetches and merges the tour's index and content documents
	// beneath assetBaseURL. Returns domain.ErrNotFound when the tour does
	// not exist and domain.ErrInvalidLegacyDocument when it does not
	// validate.
	LoadTour(ctx context.Context, assetBaseURL string) (*legacy.Document, error)

	// Download streams the asset at url into w.
	Download(ctx context.Context, url string, w io.Writer) error
}
