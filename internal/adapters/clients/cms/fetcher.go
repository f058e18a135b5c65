// Package cms is the outbound adapter for the headless CMS content API. It
// fetches one resource in one locale, follows pagination, and mirrors the
// resulting document into the mock store.
package cms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain/query"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/logging"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/telemetry"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// Compile-time interface check.
var _ ports.ContentFetcher = (*Fetcher)(nil)

// maxPages bounds pagination in case the CMS reports a runaway pageCount.
const maxPages = 1000

// DocumentWriter persists a fetched document and returns where it was written.
type DocumentWriter interface {
	WriteDocument(dir, language string, doc []byte) (string, error)
}

// Fetcher implements [ports.ContentFetcher] against the CMS REST API.
type Fetcher struct {
	req      *acl.Requester
	writer   DocumentWriter
	pageSize int
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewFetcher creates a Fetcher. The client should carry the CMS bearer token
// (see httpclient.WithBearerToken). pageSize applies to paginated endpoints.
func NewFetcher(
	client *httpclient.Client,
	writer DocumentWriter,
	pageSize int,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Fetcher {
	return &Fetcher{
		req:      acl.NewRequester(client, logger),
		writer:   writer,
		pageSize: pageSize,
		metrics:  metrics,
		logger:   logger,
	}
}

// Fetch retrieves endpoint in language and writes it to
// <endpoint.OutputDirectory>/<language>.json. A 404 on the first request
// yields a skipped result and leaves any existing file untouched; every
// other failure, a 404 on a later page included, yields a failed result. Fetch never panics on upstream data.
func (f *Fetcher) Fetch(ctx context.Context, endpoint domain.Endpoint, language string) domain.FetchResult {
	logger := logging.FromContext(ctx)

	result := f.fetch(ctx, endpoint, language)
	f.metrics.RecordFetch(ctx, endpoint.SuiteID, language, string(result.Status))

	switch result.Status {
	case domain.FetchSucceeded:
		logger.InfoContext(ctx, "content fetched",
			slog.String("suite_id", endpoint.SuiteID),
			slog.String("language", language),
			slog.String("path", result.Path),
		)
	case domain.FetchSkipped:
		logger.InfoContext(ctx, "content not published for language",
			slog.String("suite_id", endpoint.SuiteID),
			slog.String("language", language),
		)
	case domain.FetchFailed:
		logger.ErrorContext(ctx, "failed to fetch content",
			slog.String("operation", "Fetch"),
			slog.String("suite_id", endpoint.SuiteID),
			slog.String("language", language),
			slog.Any("error", result.Err),
		)
	}
	return result
}

func (f *Fetcher) fetch(ctx context.Context, endpoint domain.Endpoint, language string) domain.FetchResult {
	var (
		doc []byte
		err error
	)
	if endpoint.Paginated {
		doc, err = f.fetchAllPages(ctx, endpoint, language)
	} else {
		doc, err = f.fetchJSON(ctx, requestRef(endpoint, language, ""))
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Skipped(err)
		}
		return domain.Failed(err)
	}

	path, err := f.writer.WriteDocument(endpoint.OutputDirectory, language, doc)
	if err != nil {
		return domain.Failed(fmt.Errorf("writing %s/%s: %w", endpoint.SuiteID, language, err))
	}
	return domain.Succeeded(doc, path)
}

// fetchJSON gets ref and checks that the body is valid JSON.
func (f *Fetcher) fetchJSON(ctx context.Context, ref string) ([]byte, error) {
	body, err := f.req.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("parsing response from %s: %w", ref, domain.ErrMalformedResponse)
	}
	return body, nil
}

// fetchAllPages follows meta.pagination.pageCount and concatenates every
// page's data array into the first page's envelope.
func (f *Fetcher) fetchAllPages(ctx context.Context, endpoint domain.Endpoint, language string) ([]byte, error) {
	var (
		merged []byte
		items  []string
	)

	for page := 1; page <= maxPages; page++ {
		body, err := f.fetchJSON(ctx, requestRef(endpoint, language, query.Pagination(page, f.pageSize)))
		if err != nil {
			if page > 1 && errors.Is(err, domain.ErrNotFound) {
				// Only a missing first page means the locale is unpublished.
				return nil, fmt.Errorf("page %d of %s: %v: %w", page, endpoint.SuiteID, err, domain.ErrUnavailable)
			}
			return nil, err
		}

		data := gjson.GetBytes(body, "data")
		if !data.IsArray() {
			return nil, fmt.Errorf("page %d of %s has no data array: %w", page, endpoint.SuiteID, domain.ErrMalformedResponse)
		}
		if merged == nil {
			merged = body
		}
		for _, item := range data.Array() {
			items = append(items, item.Raw)
		}

		pageCount := int(gjson.GetBytes(body, "meta.pagination.pageCount").Int())
		if page >= pageCount || len(data.Array()) == 0 {
			break
		}
	}

	return mergePages(merged, items)
}

// mergePages replaces the envelope's data with items and rewrites
// meta.pagination to describe a single page holding everything. Keys the
// envelope lacks are appended in page, pageSize, pageCount, total order.
func mergePages(envelope []byte, items []string) ([]byte, error) {
	out, err := sjson.SetRawBytes(envelope, "data", []byte("["+strings.Join(items, ",")+"]"))
	if err != nil {
		return nil, fmt.Errorf("merging pages: %w", err)
	}
	if !gjson.GetBytes(out, "meta.pagination").Exists() {
		return out, nil
	}

	total := len(items)
	pagination := []struct {
		key string
		val int
	}{
		{"page", 1},
		{"pageSize", max(total, 1)},
		{"pageCount", 1},
		{"total", total},
	}
	for _, p := range pagination {
		if out, err = sjson.SetBytes(out, "meta.pagination."+p.key, p.val); err != nil {
			return nil, fmt.Errorf("rewriting pagination: %w", err)
		}
	}
	return out, nil
}

// requestRef builds <path>?<queryParams>&<extra>&locale=<language>.
func requestRef(endpoint domain.Endpoint, language, extra string) string {
	params := query.Join(endpoint.QueryParams, extra, "locale="+url.QueryEscape(language))
	return endpoint.Path + "?" + params
}
