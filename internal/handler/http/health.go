// Package http holds the server-wide HTTP pieces of the news service:
// middleware, Prometheus instrumentation and the health endpoints. The
// news routes themselves live in the article subpackage.
package http

import (
	"context"
	"net/http"
	"time"

	"news-portal/internal/handler/http/respond"
)

// Pinger is a store that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerState reports the circuit breaker guarding the store.
type BreakerState interface {
	IsOpen() bool
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of one health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"

	pingTimeout = 2 * time.Second
)

// HealthHandler reports store reachability and the breaker state.
// An open breaker is reported as degraded but does not fail the check.
type HealthHandler struct {
	Store   Pinger
	Breaker BreakerState // optional
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]CheckStatus, 2),
		Version:   h.Version,
	}

	switch {
	case h.Store == nil:
		resp.Checks["store"] = CheckStatus{Status: statusUnhealthy, Message: "store not configured"}
	default:
		if err := h.Store.Ping(ctx); err != nil {
			resp.Checks["store"] = CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
		} else {
			resp.Checks["store"] = CheckStatus{Status: statusHealthy}
		}
	}
	if resp.Checks["store"].Status != statusHealthy {
		resp.Status = statusUnhealthy
	}

	if h.Breaker != nil {
		if h.Breaker.IsOpen() {
			resp.Checks["circuit_breaker"] = CheckStatus{Status: statusDegraded, Message: "store breaker is open"}
		} else {
			resp.Checks["circuit_breaker"] = CheckStatus{Status: statusHealthy}
		}
	}

	code := http.StatusOK
	if resp.Status != statusHealthy {
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}

// ReadyHandler answers readiness checks: 200 once the store answers a ping.
type ReadyHandler struct {
	Store Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if h.Store == nil {
		http.Error(w, "store not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.Store.Ping(ctx); err != nil {
		http.Error(w, "store not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler answers liveness checks and never touches the store.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("alive"))
}
