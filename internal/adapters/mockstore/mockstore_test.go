package mockstore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/mockstore"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

func TestWriter_WriteDocument_PrettyAndAtomic(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := mockstore.NewWriter(root)
	dir := filepath.Join(root, "default", "config")

	path, err := w.WriteDocument(dir, "en", []byte(`{"data":{"id":1,"title":"Kyushu"}}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "en.json"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":1,"title":"Kyushu"}}`, string(got))
	assert.True(t, strings.Contains(string(got), "\n  "), "document should be pretty printed")

	_, err = w.WriteDocument(dir, "en", []byte(`{"data":{"id":2}}`))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")

	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":2}}`, string(got))
}

func TestStore_RoundTripWithFallback(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := mockstore.NewWriter(root)
	dir := filepath.Join(root, "default", "poi-guides")

	enPath, err := w.WriteDocument(dir, "en", []byte(`{"data":[{"id":1,"poi":{"slug":"beppu"}}],"meta":{}}`))
	require.NoError(t, err)
	jaPath, err := w.WriteDocument(dir, "ja", []byte(`[{"id":1,"poi":{"slug":"beppu-ja"}}]`))
	require.NoError(t, err)

	require.NoError(t, w.WriteManifest(&domain.Manifest{
		RunID:       "run-1",
		ClientID:    "default",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Entries: []domain.ManifestEntry{
			{ClientID: "default", SuiteID: "poi-guides", Language: "en", Path: enPath},
			{ClientID: "default", SuiteID: "poi-guides", Language: "ja", Path: jaPath},
		},
	}))

	manifest, err := os.ReadFile(filepath.Join(root, mockstore.ManifestFile))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"default/poi-guides/en.json"`)

	store, err := mockstore.Open(root)
	require.NoError(t, err)
	assert.Equal(t, "default", store.ClientID())
	require.NoError(t, store.HealthCheck(context.Background()))

	en, served, err := store.Collection("poi-guides", "en")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"poi":{"slug":"beppu"}}]`, string(en))
	assert.Equal(t, "en", served)

	ja, served, err := store.Collection("poi-guides", "ja")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"poi":{"slug":"beppu-ja"}}]`, string(ja))
	assert.Equal(t, "ja", served)

	ko, served, err := store.Collection("poi-guides", "ko")
	require.NoError(t, err)
	assert.JSONEq(t, string(en), string(ko), "missing language falls back to en")
	assert.Equal(t, "en", served, "fallback reports the language actually served")

	_, _, err = store.Collection("restaurants", "en")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CollectionWithoutArray(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := mockstore.NewWriter(root)
	path, err := w.WriteDocument(filepath.Join(root, "default", "config"), "en", []byte(`{"data":{"id":1}}`))
	require.NoError(t, err)
	require.NoError(t, w.WriteManifest(&domain.Manifest{
		ClientID: "default",
		Entries:  []domain.ManifestEntry{{SuiteID: "config", Language: "en", Path: path}},
	}))

	store, err := mockstore.Open(root)
	require.NoError(t, err)

	doc, served, err := store.Document("config", "ko")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":1}}`, string(doc))
	assert.Equal(t, "en", served)

	_, _, err = store.Collection("config", "en")
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestOpen_MissingManifest(t *testing.T) {
	t.Parallel()

	_, err := mockstore.Open(t.TempDir())
	require.Error(t, err)
}

func TestWriter_WriteDiscoveredConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := mockstore.NewWriter(root)

	require.NoError(t, w.WriteDiscoveredConfig(mockstore.DiscoveredConfig{
		ClientID:     "kyushu",
		RunID:        "run-9",
		DiscoveredAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}))

	got, err := os.ReadFile(filepath.Join(root, mockstore.DiscoveredConfigFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"clientId":"kyushu","runId":"run-9","discoveredAt":"2026-01-02T00:00:00Z"}`, string(got))
}

func TestWriter_WriteManifest_KeepsEarlierFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := mockstore.NewWriter(root)
	dir := filepath.Join(root, "default", "poi-guides")

	enPath, err := w.WriteDocument(dir, "en", []byte(`[]`))
	require.NoError(t, err)
	koPath, err := w.WriteDocument(dir, "ko", []byte(`[]`))
	require.NoError(t, err)
	require.NoError(t, w.WriteManifest(&domain.Manifest{
		RunID:    "run-1",
		ClientID: "default",
		Entries: []domain.ManifestEntry{
			{ClientID: "default", SuiteID: "poi-guides", Language: "en", Path: enPath},
			{ClientID: "default", SuiteID: "poi-guides", Language: "ko", Path: koPath},
			{ClientID: "default", SuiteID: "poi-guides", Language: "ja", Path: filepath.Join(dir, "ja.json")},
		},
	}))

	// Second run: ko was skipped, ja never existed on disk.
	require.NoError(t, w.WriteManifest(&domain.Manifest{
		RunID:    "run-2",
		ClientID: "default",
		Entries: []domain.ManifestEntry{
			{ClientID: "default", SuiteID: "poi-guides", Language: "en", Path: enPath},
		},
	}))

	store, err := mockstore.Open(root)
	require.NoError(t, err)

	_, served, err := store.Document("poi-guides", "ko")
	require.NoError(t, err)
	assert.Equal(t, "ko", served)

	raw, err := os.ReadFile(filepath.Join(root, mockstore.ManifestFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"run-2"`)
	assert.Contains(t, string(raw), "default/poi-guides/ko.json")
	assert.NotContains(t, string(raw), "ja.json")
}
