package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(http.ResponseWriter)
		want  int
	}{
		{
			name:  "nothing written defaults to 200",
			write: func(http.ResponseWriter) {},
			want:  http.StatusOK,
		},
		{
			name:  "explicit status",
			write: func(w http.ResponseWriter) { w.WriteHeader(http.StatusNotFound) },
			want:  http.StatusNotFound,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusBadGateway)
				w.WriteHeader(http.StatusOK)
			},
			want: http.StatusBadGateway,
		},
		{
			name: "body before status commits 200",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("{}"))
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := newStatusRecorder(rec)
			tt.write(sr)

			if sr.status != tt.want {
				t.Errorf("status = %d, want %d", sr.status, tt.want)
			}
			if rec.Code != tt.want {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestStatusRecorder_CountsBytes(t *testing.T) {
	t.Parallel()

	sr := newStatusRecorder(httptest.NewRecorder())
	_, _ = sr.Write([]byte(`{"id":`))
	_, _ = sr.Write([]byte(`"JPN-OITA-TUR-001"}`))

	if sr.bytes != 25 {
		t.Errorf("bytes = %d, want 25", sr.bytes)
	}
	if !sr.wroteHeader {
		t.Error("wroteHeader = false after Write, want true")
	}
}

func TestStatusRecorder_Language(t *testing.T) {
	t.Parallel()

	sr := newStatusRecorder(httptest.NewRecorder())
	if got := sr.Language(); got != "" {
		t.Errorf("Language() = %q before the handler ran, want empty", got)
	}

	sr.Header().Set("Content-Language", "zh-Hant")
	if got := sr.Language(); got != "zh-Hant" {
		t.Errorf("Language() = %q, want %q", got, "zh-Hant")
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if newStatusRecorder(rec).Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
