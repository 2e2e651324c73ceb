package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

type recordedRequest struct {
	method, path, status string
}

type mockMetricsRecorder struct {
	mu          sync.Mutex
	requests    []recordedRequest
	activeConns int
}

func (m *mockMetricsRecorder) RecordHTTPRequest(method, path, status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{method, path, status})
}

func (m *mockMetricsRecorder) IncActiveConnections() { m.activeConns++ }
func (m *mockMetricsRecorder) DecActiveConnections() { m.activeConns-- }

type traceAwareRecorder struct {
	mockMetricsRecorder
	traceID string
}

func (m *traceAwareRecorder) RecordHTTPRequestContext(ctx context.Context, method, path, status string, d time.Duration) {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		m.traceID = sc.TraceID().String()
	}
	m.RecordHTTPRequest(method, path, status, d)
}

func TestMetrics_RoutePatternLabel(t *testing.T) {
	mock := &mockMetricsRecorder{}
	r := chi.NewRouter()
	r.Use(Metrics(mock))
	r.Get("/api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/projects/42", nil))

	require.Len(t, mock.requests, 1)
	assert.Equal(t, recordedRequest{"GET", "/api/projects/{id}", "404"}, mock.requests[0])
	assert.Zero(t, mock.activeConns)
}

func TestMetrics_SkipsMetricsPath(t *testing.T) {
	mock := &mockMetricsRecorder{}
	handler := Metrics(mock)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Empty(t, mock.requests)
}

func TestMetrics_PanicRecordedAndRethrown(t *testing.T) {
	mock := &mockMetricsRecorder{}
	handler := Metrics(mock)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/skills/7", nil))
	})
	require.Len(t, mock.requests, 1)
	assert.Equal(t, recordedRequest{"POST", "/api/skills/:id", "500"}, mock.requests[0])
	assert.Zero(t, mock.activeConns)
}

func TestMetrics_ContextRecorderGetsTrace(t *testing.T) {
	mock := &traceAwareRecorder{}
	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})

	handler := Metrics(mock)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, traceID.String(), mock.traceID)
	assert.Len(t, mock.requests, 1)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/api/hero/:id", normalizePath("/api/hero/12"))
	assert.Equal(t, "/x/:id", normalizePath("/x/123e4567-e89b-12d3-a456-426614174000"))
	assert.Equal(t, "/api/resume/download/cv", normalizePath("/api/resume/download/cv"))
}
