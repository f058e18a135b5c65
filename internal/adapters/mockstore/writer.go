// Package mockstore persists CMS documents as pretty-printed JSON files and
// serves them back to the guide API. Files are laid out as
// <root>/<clientId>/<suiteId>/<language>.json and indexed by manifest.json.
package mockstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/pretty"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// File names at the store root.
const (
	ManifestFile         = "manifest.json"
	DiscoveredConfigFile = "discovered-config.json"
)

// DiscoveredConfig records which client an ingestion run targeted.
type DiscoveredConfig struct {
	ClientID     string    `json:"clientId"`
	RunID        string    `json:"runId"`
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// Writer writes documents beneath a store root. Safe for concurrent use as
// long as no two callers write the same file.
type Writer struct {
	root string
}

// NewWriter returns a Writer rooted at root.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Root returns the store root directory.
func (w *Writer) Root() string {
	return w.root
}

// WriteDocument pretty-prints doc to <dir>/<language>.json, creating parent
// directories, and returns the written path. The file is replaced atomically
// so readers never observe a partial document.
func (w *Writer) WriteDocument(dir, language string, doc []byte) (string, error) {
	path := filepath.Join(dir, language+".json")
	if err := writeAtomic(path, pretty.Pretty(doc)); err != nil {
		return "", err
	}
	return path, nil
}

// WriteManifest writes the manifest to <root>/manifest.json. Entry paths are
// stored relative to the root. Entries of a previous manifest for the same
// client are kept when this run did not rewrite them and their file still
// exists, so a language skipped on 404 stays reachable.
func (w *Writer) WriteManifest(m *domain.Manifest) error {
	out := *m
	out.Entries = make([]domain.ManifestEntry, 0, len(m.Entries))
	seen := make(map[string]struct{}, len(m.Entries))
	for _, e := range m.Entries {
		if rel, err := filepath.Rel(w.root, e.Path); err == nil && filepath.IsAbs(e.Path) == filepath.IsAbs(w.root) {
			e.Path = filepath.ToSlash(rel)
		}
		seen[docKey(e.SuiteID, e.Language)] = struct{}{}
		out.Entries = append(out.Entries, e)
	}

	for _, e := range w.previousEntries(m.ClientID) {
		if _, ok := seen[docKey(e.SuiteID, e.Language)]; ok {
			continue
		}
		if _, err := os.Stat(filepath.Join(w.root, filepath.FromSlash(e.Path))); err != nil {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	return w.writeJSON(ManifestFile, out)
}

func (w *Writer) previousEntries(clientID string) []domain.ManifestEntry {
	raw, err := os.ReadFile(filepath.Join(w.root, ManifestFile))
	if err != nil {
		return nil
	}
	var prev domain.Manifest
	if err := json.Unmarshal(raw, &prev); err != nil || prev.ClientID != clientID {
		return nil
	}
	return prev.Entries
}

// WriteDiscoveredConfig writes <root>/discovered-config.json.
func (w *Writer) WriteDiscoveredConfig(cfg DiscoveredConfig) error {
	return w.writeJSON(DiscoveredConfigFile, cfg)
}

func (w *Writer) writeJSON(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return writeAtomic(filepath.Join(w.root, name), pretty.Pretty(b))
}

// writeAtomic writes data to a temp file in the target directory and renames
// it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
