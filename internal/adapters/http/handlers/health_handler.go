package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/skysearch/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	sessions func() int
}

// HealthOption configures optional HealthHandler behavior.
type HealthOption func(*HealthHandler)

// WithSessionCount reports the number of live search sessions in the
// readiness body.
func WithSessionCount(count func() int) HealthOption {
	return func(h *HealthHandler) { h.sessions = count }
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every downstream
// check passes, 503 if any fails (for example, an open circuit breaker on
// the flights API).
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if !healthy {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	body := map[string]any{
		"status": status,
		"checks": checks,
	}
	if h.sessions != nil {
		body["active_sessions"] = h.sessions()
	}
	writeJSON(w, code, body)
}
