package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	defaultResendBase = "https://api.resend.com"
	defaultTimeout    = 10 * time.Second
)

// ResendConfig configures the Resend HTTP API client.
type ResendConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Resend sends e-mail through the Resend REST API.
type Resend struct {
	cfg    ResendConfig
	client *http.Client
}

// NewResend returns a Resend sender. It is safe for concurrent use.
func NewResend(cfg ResendConfig) *Resend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultResendBase
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Resend{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

// APIError is a non-2xx answer from Resend.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notify: resend API error (HTTP %d, %s): %s", e.StatusCode, e.Name, e.Message)
}

type resendResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send implements Sender.
func (r *Resend) Send(ctx context.Context, email Email) (string, error) {
	if r.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	data, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("notify: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/emails", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("notify: create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("notify: http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("notify: read response body: %w", err)
	}

	var out resendResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil && resp.StatusCode < 300 {
			return "", fmt.Errorf("notify: decode API response: %w", err)
		}
	}

	if resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Name: out.Name, Message: out.Message}
	}
	return out.ID, nil
}
