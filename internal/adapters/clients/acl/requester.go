package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for outbound clients:
// execution via httpclient.Client, response body cleanup, status code
// validation and error translation. Bodies are returned raw; decoding is the
// caller's concern.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get fetches ref (absolute or relative to the client's base URL) and
// returns the body of a 200 response. Other statuses are translated with
// TranslateHTTPError; network failures wrap domain.ErrTransport.
func (r *Requester) Get(ctx context.Context, ref string) ([]byte, error) {
	var body []byte
	err := r.Stream(ctx, ref, func(rd io.Reader) error {
		var readErr error
		if body, readErr = io.ReadAll(rd); readErr != nil {
			return fmt.Errorf("%w: %w", domain.ErrTransport, readErr)
		}
		return nil
	})
	return body, err
}

// Stream fetches ref and hands the body of a 200 response to consume. The
// body is closed when consume returns.
func (r *Requester) Stream(ctx context.Context, ref string, consume func(io.Reader) error) error {
	resp, err := r.client.Get(ctx, ref)
	if err != nil {
		// httpclient.Do can return both resp and err when retries are exhausted
		// on a retryable status (e.g. 5xx). In that case, translate the HTTP
		// response into a domain error rather than returning the raw retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("operation", "acl.Stream"),
			slog.String("url", ref),
			slog.Any("error", err),
		)
		return fmt.Errorf("GET %s: %w: %w", ref, domain.ErrTransport, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		translateErr := TranslateHTTPError(resp)
		r.logger.DebugContext(ctx, "unexpected status",
			slog.String("url", ref),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if err := consume(resp.Body); err != nil {
		return fmt.Errorf("consuming response from %s: %w", ref, err)
	}
	return nil
}

// closeBody closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
