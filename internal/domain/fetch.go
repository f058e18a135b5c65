package domain

import (
	"path/filepath"
	"time"
)

// FetchStatus tags the outcome of fetching one (resource, language) pair.
type FetchStatus string

// Fetch outcomes.
const (
	FetchSucceeded FetchStatus = "success"
	FetchSkipped   FetchStatus = "skipped"
	FetchFailed    FetchStatus = "failed"
)

// FetchResult is the tagged outcome of a single CMS request. Document is set
// only for FetchSucceeded; Err carries the skip reason (ErrNotFound) or the
// failure cause.
type FetchResult struct {
	Status   FetchStatus
	Document []byte
	Path     string
	Err      error
}

// Succeeded returns a success result for the given document and file path.
func Succeeded(document []byte, path string) FetchResult {
	return FetchResult{Status: FetchSucceeded, Document: document, Path: path}
}

// Skipped returns a skipped result. The reason is normally ErrNotFound.
func Skipped(reason error) FetchResult {
	return FetchResult{Status: FetchSkipped, Err: reason}
}

// Failed returns a failed result wrapping err.
func Failed(err error) FetchResult {
	return FetchResult{Status: FetchFailed, Err: err}
}

// Message returns the skip reason or failure text, empty on success.
func (r FetchResult) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Endpoint describes one CMS resource to mirror. It is built once per
// resource and not modified afterwards.
type Endpoint struct {
	SuiteID         string
	Path            string
	QueryParams     string
	OutputDirectory string
	Paginated       bool
}

// NewEndpoint returns an Endpoint whose output directory is the suite's
// directory beneath root.
func NewEndpoint(suiteID, path, queryParams, root string, paginated bool) Endpoint {
	return Endpoint{
		SuiteID:         suiteID,
		Path:            path,
		QueryParams:     queryParams,
		OutputDirectory: filepath.Join(root, suiteID),
		Paginated:       paginated,
	}
}

// ItemReport records the outcome of one (resource, language) fetch.
type ItemReport struct {
	SuiteID  string      `json:"suiteId"`
	Language string      `json:"language"`
	Status   FetchStatus `json:"status"`
	Path     string      `json:"path,omitempty"`
	Message  string      `json:"message,omitempty"`
}

// BatchReport summarizes an ingestion run. Items are in processing order.
type BatchReport struct {
	RunID     string       `json:"runId"`
	Total     int          `json:"total"`
	Succeeded int          `json:"succeeded"`
	Skipped   int          `json:"skipped"`
	Failed    int          `json:"failed"`
	Items     []ItemReport `json:"items"`
}

// Add tallies one result into the report.
func (b *BatchReport) Add(endpoint Endpoint, language string, result FetchResult) {
	b.Total++
	switch result.Status {
	case FetchSucceeded:
		b.Succeeded++
	case FetchSkipped:
		b.Skipped++
	case FetchFailed:
		b.Failed++
	}
	b.Items = append(b.Items, ItemReport{
		SuiteID:  endpoint.SuiteID,
		Language: language,
		Status:   result.Status,
		Path:     result.Path,
		Message:  result.Message(),
	})
}

// ManifestEntry maps one (client, suite, language) to a mock store file,
// relative to the mock store root.
type ManifestEntry struct {
	ClientID string `json:"clientId"`
	SuiteID  string `json:"suiteId"`
	Language string `json:"language"`
	Path     string `json:"path"`
}

// Manifest lists every file an ingestion run wrote.
type Manifest struct {
	RunID       string          `json:"runId"`
	ClientID    string          `json:"clientId"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Entries     []ManifestEntry `json:"entries"`
}

// Lookup returns the path recorded for (suiteID, language).
func (m *Manifest) Lookup(suiteID, language string) (string, bool) {
	for _, e := range m.Entries {
		if e.SuiteID == suiteID && e.Language == language {
			return e.Path, true
		}
	}
	return "", false
}
