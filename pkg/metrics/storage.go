package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// initStorageMetrics initializes record store metrics.
func (m *Manager) initStorageMetrics(cfg Config) {
	m.storageOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operations_total",
			Help: "Total number of record store operations",
		},
		[]string{"operation", "collection", "status"},
	)

	m.storageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_operation_duration_seconds",
			Help:    "Record store operation duration in seconds",
			Buckets: cfg.StorageDurationBuckets,
		},
		[]string{"operation"},
	)

	m.registry.MustRegister(m.storageOps)
	m.registry.MustRegister(m.storageDuration)
}

// ObserveStorage records one record store operation.
func (m *Manager) ObserveStorage(operation, collection string, duration time.Duration, err error) {
	if !m.enabled {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.storageOps.WithLabelValues(operation, collection, status).Inc()
	m.storageDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// initWebSocketMetrics initializes admin event feed metrics.
func (m *Manager) initWebSocketMetrics() {
	m.wsConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of admin event feed connections",
		},
	)
	m.registry.MustRegister(m.wsConnections)
}

// SetWebSocketConnections sets the number of open event feed connections.
func (m *Manager) SetWebSocketConnections(n int) {
	if !m.enabled {
		return
	}
	m.wsConnections.Set(float64(n))
}
