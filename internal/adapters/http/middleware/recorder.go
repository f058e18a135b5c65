package middleware

import "net/http"

const headerContentLanguage = "Content-Language"

// statusRecorder wraps http.ResponseWriter to capture what a handler sent:
// the status code, the body size and the language the content resolved to.
// Recovery, OpenTelemetry and Logging read it after the handler returns.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code and forwards it. Later calls
// are dropped.
func (s *statusRecorder) WriteHeader(code int) {
	if s.wroteHeader {
		return
	}
	s.status = code
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(code)
}

// Write forwards b. A write without WriteHeader commits an implicit 200.
func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Language returns the Content-Language the handler set, empty for
// responses that are not localized.
func (s *statusRecorder) Language() string {
	return s.Header().Get(headerContentLanguage)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
