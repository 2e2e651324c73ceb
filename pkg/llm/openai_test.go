package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestOpenAI_Complete(t *testing.T) {
	var got oaiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk_test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Hello there.  "}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAI(OpenAIConfig{
		APIKey:  "gsk_test",
		BaseURL: srv.URL,
		Options: Options{Temperature: 0.7, MaxTokens: 300},
	})

	out, err := p.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "be nice"},
		{Role: RoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there.", out)
	assert.Equal(t, "openai", p.Name())

	assert.Equal(t, defaultOpenAIModel, got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, oaiMessage{Role: "system", Content: "be nice"}, got.Messages[0])
}

func TestOpenAI_DoesNotLeakTraceContext(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0xf0, 0x11},
		SpanID:     trace.SpanID{0x01},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	_, err := NewOpenAI(OpenAIConfig{BaseURL: srv.URL}).Complete(ctx, []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	assert.Empty(t, headers.Get("traceparent"))
	assert.Empty(t, headers.Get("tracestate"))
}

func TestOpenAI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "api error", status: http.StatusUnauthorized, body: `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`, wantMsg: "Invalid API Key"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantErr: ErrEmptyResponse},
		{name: "blank content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"   "}}]}`, wantErr: ErrEmptyResponse},
		{name: "not json", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantMsg: "HTTP 502"},
		{name: "bare status", status: http.StatusServiceUnavailable, body: `{}`, wantMsg: "status 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOpenAI(OpenAIConfig{BaseURL: srv.URL}).Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestOpenAI_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewOpenAI(OpenAIConfig{BaseURL: srv.URL}).Complete(ctx, []Message{{Role: RoleUser, Content: "x"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
