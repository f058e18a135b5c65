package cms_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/clients/cms"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/mockstore"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/httpclient"
)

func newFetcher(t *testing.T, baseURL string, pageSize int) *cms.Fetcher {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   100,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	client := httpclient.New(cfg, "cms", nil, logger, httpclient.WithBearerToken("test-token"))
	return cms.NewFetcher(client, mockstore.NewWriter(t.TempDir()), pageSize, nil, logger)
}

func TestFetch_SuccessWritesPrettyDocument(t *testing.T) {
	t.Parallel()

	var (
		gotAuth  string
		gotQuery string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":1,"title":"Oita"},"meta":{}}`))
	}))
	t.Cleanup(srv.Close)

	dir := filepath.Join(t.TempDir(), "config")
	ep := domain.Endpoint{SuiteID: "config", Path: "/api/config", QueryParams: "populate[logo][fields][0]=url", OutputDirectory: dir}

	result := newFetcher(t, srv.URL, 100).Fetch(context.Background(), ep, "ja")

	require.Equal(t, domain.FetchSucceeded, result.Status, result.Message())
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "populate[logo][fields][0]=url&locale=ja", gotQuery)
	assert.Equal(t, filepath.Join(dir, "ja.json"), result.Path)

	written, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"id":1,"title":"Oita"},"meta":{}}`, string(written))
	assert.Contains(t, string(written), "\n")
}

func TestFetch_NotFoundSkipsAndKeepsExistingFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("locale") == "ko" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"data":null,"error":{"status":404,"name":"NotFoundError","message":"Not Found"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"id":1}}`))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	existing := filepath.Join(dir, "ko.json")
	require.NoError(t, os.WriteFile(existing, []byte(`{"stale":true}`), 0o644))

	ep := domain.Endpoint{SuiteID: "config", Path: "/api/config", OutputDirectory: dir}
	f := newFetcher(t, srv.URL, 100)

	for _, lang := range []string{"en", "ja"} {
		result := f.Fetch(context.Background(), ep, lang)
		require.Equal(t, domain.FetchSucceeded, result.Status, lang)
	}

	result := f.Fetch(context.Background(), ep, "ko")
	assert.Equal(t, domain.FetchSkipped, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrNotFound)
	assert.Empty(t, result.Path)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, `{"stale":true}`, string(got))
}

func TestFetch_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantSubstr string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantSubstr: "500"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "", wantSubstr: "401"},
		{name: "invalid json", status: http.StatusOK, body: "<html>", wantSubstr: domain.ErrMalformedResponse.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			dir := t.TempDir()
			ep := domain.Endpoint{SuiteID: "config", Path: "/api/config", OutputDirectory: dir}

			result := newFetcher(t, srv.URL, 100).Fetch(context.Background(), ep, "en")

			assert.Equal(t, domain.FetchFailed, result.Status)
			assert.Contains(t, result.Message(), tt.wantSubstr)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "failed fetch must not write")
		})
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	ep := domain.Endpoint{SuiteID: "config", Path: "/api/config", OutputDirectory: t.TempDir()}
	result := newFetcher(t, url, 100).Fetch(context.Background(), ep, "en")

	assert.Equal(t, domain.FetchFailed, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrTransport)
}

func TestFetch_PaginatedMergesPages(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		pages []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("pagination[page]"))
		mu.Lock()
		pages = append(pages, r.URL.Query().Get("pagination[page]")+"/"+r.URL.Query().Get("pagination[pageSize]"))
		mu.Unlock()

		_, _ = fmt.Fprintf(w,
			`{"data":[{"id":%d},{"id":%d}],"meta":{"pagination":{"page":%d,"pageSize":2,"pageCount":3,"total":6}}}`,
			page*10+1, page*10+2, page)
	}))
	t.Cleanup(srv.Close)

	ep := domain.Endpoint{SuiteID: "poi-guides", Path: "/api/poi-guides", OutputDirectory: t.TempDir(), Paginated: true}
	result := newFetcher(t, srv.URL, 2).Fetch(context.Background(), ep, "en")

	require.Equal(t, domain.FetchSucceeded, result.Status, result.Message())
	assert.Equal(t, []string{"1/2", "2/2", "3/2"}, pages)
	assert.JSONEq(t,
		`{"data":[{"id":11},{"id":12},{"id":21},{"id":22},{"id":31},{"id":32}],`+
			`"meta":{"pagination":{"page":1,"pageSize":6,"pageCount":1,"total":6}}}`,
		string(result.Document))
}

func TestFetch_PaginatedSinglePageWithoutMeta(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"data":[{"id":1}]}`))
	}))
	t.Cleanup(srv.Close)

	ep := domain.Endpoint{SuiteID: "poi-guides", Path: "/api/poi-guides", OutputDirectory: t.TempDir(), Paginated: true}
	result := newFetcher(t, srv.URL, 50).Fetch(context.Background(), ep, "en")

	require.Equal(t, domain.FetchSucceeded, result.Status, result.Message())
	assert.Equal(t, 1, calls)
	assert.JSONEq(t, `{"data":[{"id":1}]}`, string(result.Document))
}

func TestFetch_PaginatedPageWithoutData(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":1}}`))
	}))
	t.Cleanup(srv.Close)

	ep := domain.Endpoint{SuiteID: "poi-guides", Path: "/api/poi-guides", OutputDirectory: t.TempDir(), Paginated: true}
	result := newFetcher(t, srv.URL, 50).Fetch(context.Background(), ep, "en")

	assert.Equal(t, domain.FetchFailed, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrMalformedResponse)
}

func TestFetch_PaginatedLaterPageNotFoundFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pagination[page]") != "1" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"id":1}],"meta":{"pagination":{"page":1,"pageSize":1,"pageCount":2,"total":2}}}`))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	existing := filepath.Join(dir, "en.json")
	require.NoError(t, os.WriteFile(existing, []byte(`{"data":[]}`), 0o644))

	ep := domain.Endpoint{SuiteID: "poi-guides", Path: "/api/poi-guides", OutputDirectory: dir, Paginated: true}
	result := newFetcher(t, srv.URL, 1).Fetch(context.Background(), ep, "en")

	assert.Equal(t, domain.FetchFailed, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrUnavailable)
	assert.NotErrorIs(t, result.Err, domain.ErrNotFound)
	assert.Contains(t, result.Message(), "page 2")

	kept, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(kept))
}

func TestFetch_PaginatedFirstPageNotFoundSkips(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	ep := domain.Endpoint{SuiteID: "poi-guides", Path: "/api/poi-guides", OutputDirectory: t.TempDir(), Paginated: true}
	result := newFetcher(t, srv.URL, 50).Fetch(context.Background(), ep, "ko")

	assert.Equal(t, domain.FetchSkipped, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrNotFound)
}

func TestFetch_PaginationKeysAppendInFixedOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1},{"id":2}],"meta":{"pagination":{"total":2}}}`))
	}))
	t.Cleanup(srv.Close)

	ep := domain.Endpoint{SuiteID: "poi-guides", Path: "/api/poi-guides", OutputDirectory: t.TempDir(), Paginated: true}

	for range 5 {
		result := newFetcher(t, srv.URL, 50).Fetch(context.Background(), ep, "en")
		require.Equal(t, domain.FetchSucceeded, result.Status, result.Message())
		assert.Equal(t,
			`{"total":2,"page":1,"pageSize":2,"pageCount":1}`,
			gjson.GetBytes(result.Document, "meta.pagination").Raw)
	}
}
