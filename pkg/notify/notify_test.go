package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Email
	err  error
}

func (s *recordingSender) Send(_ context.Context, e Email) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, e)
	return "email-1", nil
}

func TestResend_Send(t *testing.T) {
	var got Email
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc-123"}`))
	}))
	defer srv.Close()

	client := NewResend(ResendConfig{APIKey: "re_123", BaseURL: srv.URL + "/"})
	id, err := client.Send(context.Background(), Email{
		From:    "a@example.com",
		To:      []string{"b@example.com"},
		Subject: "hi",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, []string{"b@example.com"}, got.To)
	assert.Equal(t, "hi", got.Subject)
}

func TestResend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`))
	}))
	defer srv.Close()

	_, err := NewResend(ResendConfig{APIKey: "k", BaseURL: srv.URL}).Send(context.Background(), Email{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Name)
	assert.Contains(t, apiErr.Error(), "Invalid to field")
}

func TestResend_MissingKey(t *testing.T) {
	_, err := NewResend(ResendConfig{}).Send(context.Background(), Email{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMailer_NotifyNewMessageEscapesInput(t *testing.T) {
	sender := &recordingSender{}
	m := NewMailer(sender, "Portfolio <noreply@example.com>", "owner@example.com", "Tunji Paul")

	err := m.NotifyNewMessage(context.Background(), "Eve", "eve@example.com", "Hello", "<script>alert(1)</script>")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	e := sender.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, e.To)
	assert.Equal(t, "New Portfolio Message: Hello", e.Subject)
	assert.Equal(t, "eve@example.com", e.ReplyTo)
	assert.NotContains(t, e.HTML, "<script>")
	assert.Contains(t, e.HTML, "&lt;script&gt;")
}

func TestMailer_NotifyWithoutAdmin(t *testing.T) {
	m := NewMailer(&recordingSender{}, "from@example.com", "", "")
	err := m.NotifyNewMessage(context.Background(), "a", "b@example.com", "c", "d")
	assert.ErrorIs(t, err, ErrNotConfigured)

	m.SetAdminEmail("owner@example.com")
	assert.NoError(t, m.NotifyNewMessage(context.Background(), "a", "b@example.com", "c", "d"))
}

func TestMailer_SendReply(t *testing.T) {
	sender := &recordingSender{}
	m := NewMailer(sender, "from@example.com", "owner@example.com", "Tunji Paul")

	id, err := m.SendReply(context.Background(), "visitor@example.com", "Thanks for reaching out")
	require.NoError(t, err)
	assert.Equal(t, "email-1", id)

	e := sender.sent[0]
	assert.Equal(t, "Re: Your message from portfolio", e.Subject)
	assert.True(t, strings.Contains(e.HTML, "Thanks for reaching out"))
	assert.Contains(t, e.HTML, "from Tunji Paul")
}

func TestMailer_NilSenderIsDisabled(t *testing.T) {
	m := NewMailer(nil, "from@example.com", "owner@example.com", "")
	_, err := m.SendReply(context.Background(), "x@example.com", "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
