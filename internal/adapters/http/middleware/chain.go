// Package middleware provides the inbound middleware of the guide API. The
// server applies them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Stack builds that chain; each piece is also usable on its own.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/platform/telemetry"
)

// Chain composes middleware so that the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Stack returns the full guide API chain. Mount it inside the chi router so
// that OpenTelemetry and Logging can see the matched route. metrics may be
// nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(requestTimeout),
	)
}
