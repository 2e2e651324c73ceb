package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Manager) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultConfig())
	require.NotNil(t, m)
	assert.True(t, m.Enabled())
	assert.NotNil(t, m.Registry())
}

func TestNewManager_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	m := NewManager(cfg)
	assert.False(t, m.Enabled())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatMetrics(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.RecordChat("answered", 800*time.Millisecond)
	m.RecordChat("cached", time.Millisecond)
	m.RecordInference("openai", 700*time.Millisecond, nil)
	m.RecordInference("openai", time.Second, errors.New("boom"))
	m.RegisterChatState(func() int { return 3 }, func() int { return 2 })

	body := scrape(t, m)
	for _, want := range []string{
		`chat_requests_total{outcome="answered"} 1`,
		`chat_requests_total{outcome="cached"} 1`,
		`chat_inference_total{provider="openai",status="error"} 1`,
		`chat_inference_total{provider="openai",status="success"} 1`,
		"chat_request_duration_seconds",
		"chat_inference_duration_seconds",
		"chat_cache_entries 3",
		"chat_conversations 2",
	} {
		assert.Contains(t, body, want)
	}
}

func TestStorageAndWebSocketMetrics(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.ObserveStorage("get", "projects", time.Millisecond, nil)
	m.ObserveStorage("put", "projects", time.Millisecond, errors.New("disk full"))
	m.SetWebSocketConnections(4)

	body := scrape(t, m)
	assert.Contains(t, body, `storage_operations_total{collection="projects",operation="get",status="success"} 1`)
	assert.Contains(t, body, `storage_operations_total{collection="projects",operation="put",status="error"} 1`)
	assert.Contains(t, body, "websocket_connections 4")
}

func TestHTTPMetrics(t *testing.T) {
	m := NewManager(DefaultConfig())

	m.RecordHTTPRequest("GET", "/api/projects", "200", 5*time.Millisecond)
	m.IncActiveConnections()

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/projects",status="200"} 1`)
	assert.Contains(t, body, "http_active_connections 1")
}

func TestStartServer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 19091

	m := NewManager(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- m.StartServer(ctx, cfg.Port, cfg.Path)
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		r, err := http.Get("http://localhost:19091/metrics")
		if err != nil {
			return false
		}
		resp = r
		return true
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestNoOpManager(t *testing.T) {
	m := NoOpManager()
	assert.False(t, m.Enabled())

	// None of these may panic on a disabled manager.
	m.RecordChat("answered", time.Second)
	m.RecordInference("openai", time.Second, nil)
	m.ObserveStorage("get", "hero", time.Millisecond, nil)
	m.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
	m.IncActiveConnections()
	m.DecActiveConnections()
	m.SetWebSocketConnections(1)
	m.RegisterChatState(func() int { return 0 }, func() int { return 0 })
	assert.NoError(t, m.StartServer(context.Background(), 0, "/metrics"))
}

func TestMetricsCardinalityBounded(t *testing.T) {
	m := NewManager(DefaultConfig())

	outcomes := []string{"answered", "cached", "invalid", "rate_limited", "failed"}
	methods := []string{"GET", "POST", "PUT", "DELETE"}
	paths := []string{"/api/projects", "/api/projects/{id}", "/health", "/api/chatbot/message"}

	for i := 0; i < 50000; i++ {
		m.RecordChat(outcomes[i%len(outcomes)], time.Duration(i)*time.Microsecond)
		m.RecordHTTPRequest(methods[i%len(methods)], paths[i%len(paths)], "200", time.Duration(i)*time.Microsecond)
	}

	body := scrape(t, m)
	assert.Equal(t, len(outcomes), strings.Count(body, "chat_requests_total{"))
}

func BenchmarkRecordHTTPRequest(b *testing.B) {
	m := NewManager(DefaultConfig())
	d := 5 * time.Millisecond
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordHTTPRequest("GET", "/api/projects", "200", d)
	}
}

func BenchmarkNoOpRecording(b *testing.B) {
	m := NoOpManager()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordChat("answered", time.Millisecond)
		m.ObserveStorage("get", "hero", time.Millisecond, nil)
	}
}
