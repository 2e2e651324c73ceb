package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// initChatMetrics initializes chatbot metrics.
func (m *Manager) initChatMetrics(cfg Config) {
	m.chatRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Total number of chat requests by outcome",
		},
		[]string{"outcome"},
	)

	m.chatDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_request_duration_seconds",
			Help:    "Chat request duration in seconds",
			Buckets: cfg.ChatDurationBuckets,
		},
		[]string{"outcome"},
	)

	m.inferenceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_inference_total",
			Help: "Total number of language model calls by provider and status",
		},
		[]string{"provider", "status"},
	)

	m.inferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_inference_duration_seconds",
			Help:    "Language model call duration in seconds",
			Buckets: cfg.InferenceDurationBuckets,
		},
		[]string{"provider"},
	)

	m.registry.MustRegister(m.chatRequests)
	m.registry.MustRegister(m.chatDuration)
	m.registry.MustRegister(m.inferenceRequests)
	m.registry.MustRegister(m.inferenceDuration)
}

// RecordChat records a finished chat request.
func (m *Manager) RecordChat(outcome string, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.chatRequests.WithLabelValues(outcome).Inc()
	m.chatDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordInference records one language model call.
func (m *Manager) RecordInference(provider string, duration time.Duration, err error) {
	if !m.enabled {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.inferenceRequests.WithLabelValues(provider, status).Inc()
	m.inferenceDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RegisterChatState exports the chat cache and memory sizes as gauges read
// at scrape time.
func (m *Manager) RegisterChatState(cacheEntries, conversations func() int) {
	if !m.enabled {
		return
	}
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "chat_cache_entries",
			Help: "Number of cached chat replies, expired entries included",
		}, func() float64 { return float64(cacheEntries()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "chat_conversations",
			Help: "Number of conversations held in memory",
		}, func() float64 { return float64(conversations()) }),
	)
}
