package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/guide-content-pipeline/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical map[string]bool
}

// NewHealthHandler creates a HealthHandler. Readiness fails only when one of
// the critical checkers fails; any other failing checker reports the service
// as degraded but still ready. With no critical names every checker is
// critical.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	h := &HealthHandler{registry: registry}
	if len(critical) > 0 {
		h.critical = make(map[string]bool, len(critical))
		for _, name := range critical {
			h.critical[name] = true
		}
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A guide API whose asset store breaker
// is open still serves POI lookups, so it answers 200 "degraded"; a failing
// critical component such as the mock store answers 503 "not_ready".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status := statusReady
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		switch {
		case h.isCritical(name):
			status = statusNotReady
		case status == statusReady:
			status = statusDegraded
		}
	}

	code := http.StatusOK
	if status == statusNotReady {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}

func (h *HealthHandler) isCritical(name string) bool {
	return h.critical == nil || h.critical[name]
}
