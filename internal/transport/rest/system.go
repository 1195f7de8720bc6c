package rest

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// SystemInfo describes the running service for the unauthenticated endpoints.
type SystemInfo struct {
	Service    string
	Version    string
	MockAuth   bool
	MockTokens []string
}

// SystemHandler serves service info, the mock-auth plug and health checks.
type SystemHandler struct {
	db   dbPinger
	info SystemInfo
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(db dbPinger, info SystemInfo) *SystemHandler {
	return &SystemHandler{db: db, info: info}
}

type rootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type plugResponse struct {
	PlugName            string   `json:"plug_name"`
	Status              string   `json:"status"`
	Description         string   `json:"description"`
	AvailableMockTokens []string `json:"available_mock_tokens"`
}

// HealthResponse is the body of /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Root handles GET /.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Service: h.info.Service, Version: h.info.Version, Status: "ok"})
}

// Plug handles GET /plug. Tokens are listed only while mock auth is on.
func (h *SystemHandler) Plug(w http.ResponseWriter, r *http.Request) {
	resp := plugResponse{
		PlugName:    "mock_authentication",
		Status:      "off",
		Description: "When 'on', bearer tokens are resolved to fixed mock users. Restart with AUTH_MODE=mock to enable.",
	}
	if h.info.MockAuth {
		resp.Status = "on"
		resp.AvailableMockTokens = h.info.MockTokens
	}
	writeJSON(w, http.StatusOK, resp)
}

// Live is the liveness check. Always 200.
func (h *SystemHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready pings the database: 200 if reachable, 503 otherwise.
func (h *SystemHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports version and per-component status with database latency.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.info.Version,
		Components: make(map[string]CompStatus, 1),
	}
	status := http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}
