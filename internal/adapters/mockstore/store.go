package mockstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// CheckerName identifies the store in readiness results.
const CheckerName = "mockstore"

// Store is a read-only view of the mock store, loaded once from the manifest.
// It is safe for concurrent use.
type Store struct {
	manifest domain.Manifest
	docs     map[string][]byte // keyed by suiteID + "/" + language
}

// Open reads <root>/manifest.json and every document it lists.
func Open(root string) (*Store, error) {
	raw, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m domain.Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	docs := make(map[string][]byte, len(m.Entries))
	for _, e := range m.Entries {
		path := e.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, filepath.FromSlash(path))
		}
		doc, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s/%s: %w", e.SuiteID, e.Language, err)
		}
		docs[docKey(e.SuiteID, e.Language)] = doc
	}

	return &Store{manifest: m, docs: docs}, nil
}

// ClientID returns the client the store was ingested for.
func (s *Store) ClientID() string {
	return s.manifest.ClientID
}

// Document returns the stored document for (suiteID, language) and the
// language it was stored under, falling back to the default language when
// the requested one was never written.
func (s *Store) Document(suiteID, language string) ([]byte, string, error) {
	for _, lang := range []string{language, domain.DefaultLanguage} {
		if doc, ok := s.docs[docKey(suiteID, lang)]; ok {
			return doc, lang, nil
		}
	}
	return nil, "", fmt.Errorf("suite %q (%s): %w", suiteID, language, domain.ErrNotFound)
}

// Collection returns the suite's item array for language: the "data" array
// of a CMS envelope, or the document itself when it is a bare array. The
// second result is the language actually served.
func (s *Store) Collection(suiteID, language string) ([]byte, string, error) {
	doc, served, err := s.Document(suiteID, language)
	if err != nil {
		return nil, "", err
	}

	parsed := gjson.ParseBytes(doc)
	if parsed.IsArray() {
		return doc, served, nil
	}
	if data := parsed.Get("data"); data.IsArray() {
		return []byte(data.Raw), served, nil
	}
	return nil, "", fmt.Errorf("suite %q (%s) has no item array: %w", suiteID, served, domain.ErrMalformedResponse)
}

// Name returns CheckerName.
func (s *Store) Name() string {
	return CheckerName
}

// HealthCheck reports an empty store as unhealthy.
func (s *Store) HealthCheck(_ context.Context) error {
	if len(s.docs) == 0 {
		return fmt.Errorf("mockstore: no documents for client %q", s.manifest.ClientID)
	}
	return nil
}

func docKey(suiteID, language string) string {
	return suiteID + "/" + language
}
