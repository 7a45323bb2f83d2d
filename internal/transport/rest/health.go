package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency the service cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	components map[string]Pinger
	version    string
	now        func() time.Time
}

// NewHealthHandler creates a HealthHandler. Every component is pinged by
// Ready and Health.
func NewHealthHandler(version string, components map[string]Pinger) *HealthHandler {
	return &HealthHandler{components: components, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 503 as soon as one component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, up := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !up {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every component with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, up := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !up {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out := make(map[string]CompStatus, len(h.components))
	up := true
	for name, p := range h.components {
		start := time.Now()
		if err := p.Ping(ctx); err != nil {
			out[name] = CompStatus{Status: "down", Error: err.Error()}
			up = false
			continue
		}
		out[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return out, up
}
