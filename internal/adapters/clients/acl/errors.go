// Package acl is the anti-corruption layer shared by the outbound CMS and
// legacy asset store clients. It owns the raw request lifecycle and maps
// downstream HTTP failures onto domain sentinel errors; the clients in
// sibling packages never see a status code.
package acl

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the subset of an error response we surface. The CMS wraps
// errors as {"error":{"status","name","message","details":{"errors":[...]}}};
// RFC 9457 problem documents carry "detail" and "errors" at the top level.
type errorBody struct {
	message string
	fields  map[string]string
}

// TranslateHTTPError maps an HTTP error response to a domain error. The
// status code always appears in the message so batch reports can show it.
// For 400/422 responses with field-level errors, it returns a
// *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	eb := parseErrorBody(resp)

	detail := eb.message
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	detail = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, detail)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(eb.fields) > 0 {
			return &domain.ValidationError{Fields: eb.fields}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %s", detail)
	}
}

// parseErrorBody reads a JSON error body in either the CMS envelope or the
// RFC 9457 shape. Returns an empty errorBody when the body is absent or not
// JSON.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || !gjson.ValidBytes(raw) {
		return errorBody{}
	}

	doc := gjson.ParseBytes(raw)
	if envelope := doc.Get("error"); envelope.IsObject() {
		return errorBody{
			message: envelope.Get("message").String(),
			fields:  cmsFieldErrors(envelope.Get("details.errors")),
		}
	}

	return errorBody{
		message: doc.Get("detail").String(),
		fields:  problemFieldErrors(doc.Get("errors")),
	}
}

// cmsFieldErrors converts [{"path":["a","b"],"message":"..."}] to {"a.b": "..."}.
func cmsFieldErrors(list gjson.Result) map[string]string {
	if !list.IsArray() {
		return nil
	}
	fields := make(map[string]string)
	list.ForEach(func(_, item gjson.Result) bool {
		var path []string
		for _, p := range item.Get("path").Array() {
			path = append(path, p.String())
		}
		if len(path) > 0 {
			fields[strings.Join(path, ".")] = item.Get("message").String()
		}
		return true
	})
	return fields
}

// problemFieldErrors converts RFC 9457 {"location","message"} entries,
// stripping the "body." prefix from locations.
func problemFieldErrors(list gjson.Result) map[string]string {
	if !list.IsArray() {
		return nil
	}
	fields := make(map[string]string)
	list.ForEach(func(_, item gjson.Result) bool {
		field := strings.TrimPrefix(item.Get("location").String(), "body.")
		if field != "" {
			fields[field] = item.Get("message").String()
		}
		return true
	})
	return fields
}
