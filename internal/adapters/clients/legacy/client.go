// Package legacy is the outbound adapter for the legacy tour asset store, an
// object store bucket holding each tour's index.json, content.json and its
// audio, subtitle and image files.
package legacy

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/clients/acl"
	domainlegacy "github.com/jsamuelsen11/guide-content-pipeline/internal/domain/legacy"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/httpclient"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

// Compile-time interface check.
var _ ports.LegacyTourClient = (*Client)(nil)

// Object names beneath a tour's asset base URL.
const (
	indexObject   = "index.json"
	contentObject = "content.json"
)

// Client implements [ports.LegacyTourClient].
type Client struct {
	req    *acl.Requester
	logger *slog.Logger
}

// NewClient creates a Client. Asset base URLs are absolute, so the
// underlying client's base URL only matters for relative references.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    acl.NewRequester(client, logger),
		logger: logger,
	}
}

// LoadTour fetches index.json and content.json beneath assetBaseURL, merges
// them and decodes the result.
func (c *Client) LoadTour(ctx context.Context, assetBaseURL string) (*domainlegacy.Document, error) {
	index, err := c.req.Get(ctx, assetBaseURL+indexObject)
	if err != nil {
		return nil, fmt.Errorf("loading tour index: %w", err)
	}
	content, err := c.req.Get(ctx, assetBaseURL+contentObject)
	if err != nil {
		return nil, fmt.Errorf("loading tour content: %w", err)
	}

	merged, err := domainlegacy.Merge(index, content)
	if err != nil {
		return nil, err
	}
	doc, err := domainlegacy.Decode(merged)
	if err != nil {
		c.logger.WarnContext(ctx, "legacy tour failed validation",
			slog.String("asset_base_url", assetBaseURL),
			slog.Any("error", err),
		)
		return nil, err
	}
	return doc, nil
}

// Download streams the asset at url into w.
func (c *Client) Download(ctx context.Context, url string, w io.Writer) error {
	return c.req.Stream(ctx, url, func(r io.Reader) error {
		if _, err := io.Copy(w, r); err != nil {
			return fmt.Errorf("copying %s: %w", url, err)
		}
		return nil
	})
}
