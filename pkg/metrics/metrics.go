// Package metrics provides Prometheus metrics instrumentation for Folio.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for Folio.
type Manager struct {
	registry *prometheus.Registry
	enabled  bool

	// Chat metrics
	chatRequests      *prometheus.CounterVec
	chatDuration      *prometheus.HistogramVec
	inferenceRequests *prometheus.CounterVec
	inferenceDuration *prometheus.HistogramVec

	// Storage metrics
	storageOps      *prometheus.CounterVec
	storageDuration *prometheus.HistogramVec

	// HTTP metrics
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	httpConnections prometheus.Gauge

	// WebSocket metrics
	wsConnections prometheus.Gauge
}

// Config holds metrics configuration.
type Config struct {
	Enabled bool
	Port    int
	Path    string

	// Histogram bucket configurations
	ChatDurationBuckets      []float64
	InferenceDurationBuckets []float64
	StorageDurationBuckets   []float64
	HTTPDurationBuckets      []float64
}

// DefaultConfig returns default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:                  true,
		Port:                     9091,
		Path:                     "/metrics",
		ChatDurationBuckets:      []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10, 30},
		InferenceDurationBuckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		StorageDurationBuckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		HTTPDurationBuckets:      []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}
}

// NewManager creates a new metrics manager.
func NewManager(cfg Config) *Manager {
	if !cfg.Enabled {
		return &Manager{enabled: false}
	}

	registry := prometheus.NewRegistry()

	// Register Go runtime metrics
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Manager{
		registry: registry,
		enabled:  true,
	}

	m.initChatMetrics(cfg)
	m.initStorageMetrics(cfg)
	m.initHTTPMetrics(cfg)
	m.initWebSocketMetrics()

	return m
}

// Enabled returns whether metrics collection is enabled.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Registry exposes the underlying registry, nil when disabled.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler for the metrics endpoint.
func (m *Manager) Handler() http.Handler {
	if !m.enabled {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// StartServer starts the metrics HTTP server on the configured port.
// It blocks until ctx is cancelled.
func (m *Manager) StartServer(ctx context.Context, port int, path string) error {
	if !m.enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NoOpManager returns a no-op metrics manager for when metrics are disabled.
func NoOpManager() *Manager {
	return &Manager{enabled: false}
}
