package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/version"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusReporter contributes a named section to /status.
type StatusReporter func() any

// HealthHandler handles the probes, /status and the root welcome message.
type HealthHandler struct {
	store     Pinger
	started   time.Time
	reporters map[string]StatusReporter
	now       func() time.Time
}

// NewHealthHandler creates a health handler. reporters may be nil.
func NewHealthHandler(store Pinger, reporters map[string]StatusReporter) *HealthHandler {
	return &HealthHandler{
		store:     store,
		started:   time.Now(),
		reporters: reporters,
		now:       time.Now,
	}
}

// Welcome handles GET /.
// @Summary Welcome message
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to My Personal Portfolio Backend!",
	})
}

// Health handles the /health endpoint (liveness probe).
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles the /ready endpoint. The service is ready when the record
// store answers a ping.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 503 {object} map[string]bool
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, map[string]any{"ready": false, "error": "storage unavailable"})
			return
		}
	}
	response.JSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// Status handles the /status endpoint.
// @Summary Detailed status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /status [get]
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"version":        version.Info(),
		"uptime_seconds": int64(h.now().Sub(h.started).Seconds()),
	}
	for name, report := range h.reporters {
		body[name] = report()
	}
	response.JSON(w, http.StatusOK, body)
}
