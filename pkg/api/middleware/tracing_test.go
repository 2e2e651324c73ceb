package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

func TestTracing_ContinuesInboundTraceContext(t *testing.T) {
	recorder := useSpanRecorder(t)

	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0xf0, 0x11, 0x10},
		SpanID:     trace.SpanID{0xab, 0xcd},
		TraceFlags: trace.FlagsSampled,
	})
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(trace.ContextWithSpanContext(context.Background(), parent), carrier)

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", nil)
	for k, v := range carrier {
		req.Header.Set(k, v)
	}
	Tracing(DefaultTracingOptions())(statusHandler(http.StatusOK)).ServeHTTP(httptest.NewRecorder(), req)

	spans := endedSpans(recorder, 1)
	require.Len(t, spans, 1)
	assert.Equal(t, parent.TraceID(), spans[0].Parent().TraceID())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}

func TestTracing_RootSpanWithoutHeaders(t *testing.T) {
	recorder := useSpanRecorder(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	Tracing(DefaultTracingOptions())(statusHandler(http.StatusOK)).ServeHTTP(httptest.NewRecorder(), req)

	spans := endedSpans(recorder, 1)
	require.Len(t, spans, 1)
	assert.False(t, spans[0].Parent().IsValid())
	assert.Equal(t, "GET /api/projects", spans[0].Name(), "unrouted requests fall back to the path")
}

func TestTracing_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   otelcodes.Code
	}{
		{"ok", http.StatusOK, otelcodes.Unset},
		{"rate limited stays unset", http.StatusTooManyRequests, otelcodes.Unset},
		{"not found stays unset", http.StatusNotFound, otelcodes.Unset},
		{"inference failure is an error", http.StatusInternalServerError, otelcodes.Error},
		{"timeout is an error", http.StatusGatewayTimeout, otelcodes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := useSpanRecorder(t)

			req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", nil)
			Tracing(DefaultTracingOptions())(statusHandler(tt.status)).ServeHTTP(httptest.NewRecorder(), req)

			spans := endedSpans(recorder, 1)
			require.Len(t, spans, 1)
			assert.Equal(t, tt.want, spans[0].Status().Code)
			assert.Equal(t, int64(tt.status), attributeValue(spans[0].Attributes(), "http.response.status_code").AsInt64())
		})
	}
}

func TestTracing_SkipsProbes(t *testing.T) {
	recorder := useSpanRecorder(t)
	handler := Tracing(DefaultTracingOptions())(statusHandler(http.StatusOK))

	for _, path := range []string{"/health", "/ready"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	spans := endedSpans(recorder, 1)
	require.Len(t, spans, 1, "only /status is traced")
	assert.Equal(t, "/status", attributeValue(spans[0].Attributes(), "url.path").AsString())
}

func TestTracing_SpanNamedAfterRoute(t *testing.T) {
	recorder := useSpanRecorder(t)

	r := chi.NewRouter()
	r.Use(Tracing(DefaultTracingOptions()))
	r.Delete("/api/chatbot/clear/{conversationID}", func(w http.ResponseWriter, _ *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/chatbot/clear/visitor-42", nil))

	spans := endedSpans(recorder, 1)
	require.Len(t, spans, 1)
	assert.Equal(t, "DELETE /api/chatbot/clear/{conversationID}", spans[0].Name())
	assert.Equal(t, "/api/chatbot/clear/{conversationID}", attributeValue(spans[0].Attributes(), "http.route").AsString())
}

func TestTracing_RecordsClientAddress(t *testing.T) {
	recorder := useSpanRecorder(t)

	handler := ClientIP("X-Forwarded-For")(Tracing(DefaultTracingOptions())(statusHandler(http.StatusOK)))
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 203.0.113.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := endedSpans(recorder, 1)
	require.Len(t, spans, 1)
	assert.Equal(t, "203.0.113.9", attributeValue(spans[0].Attributes(), "client.address").AsString())
}

// useSpanRecorder installs a recording tracer provider for the duration of t.
func useSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	prevProvider := otel.GetTracerProvider()
	prevPropagator := otel.GetTextMapPropagator()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevProvider)
		otel.SetTextMapPropagator(prevPropagator)
	})
	return recorder
}

// endedSpans waits briefly for at least n spans to end.
func endedSpans(recorder *tracetest.SpanRecorder, n int) []sdktrace.ReadOnlySpan {
	deadline := time.Now().Add(200 * time.Millisecond)
	for {
		spans := recorder.Ended()
		if len(spans) >= n || time.Now().After(deadline) {
			return spans
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func attributeValue(attrs []attribute.KeyValue, key string) attribute.Value {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr.Value
		}
	}
	return attribute.Value{}
}
