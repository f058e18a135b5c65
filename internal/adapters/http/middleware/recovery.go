package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/adapters/http/dto"
)

// Recovery returns middleware that turns a handler panic into a 500 problem
// response. The panic value and stack are logged with the request and route;
// clients only see a generic detail. Nothing is written when the handler had
// already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r.Context())),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)
				if !rec.wroteHeader {
					dto.WriteStatusResponse(rec, r, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
