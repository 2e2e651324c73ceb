package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOpenAIBase  = "https://api.groq.com/openai/v1"
	defaultOpenAIModel = "llama-3.3-70b-versatile"
	defaultTimeout     = 30 * time.Second
)

// OpenAIConfig configures an OpenAI-compatible chat completions endpoint
// (Groq, OpenAI, Ollama, ...).
type OpenAIConfig struct {
	APIKey string

	// BaseURL defaults to the Groq endpoint.
	BaseURL string

	Model   string
	Timeout time.Duration
	Options Options
}

type openAIProvider struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAI returns a Provider backed by an OpenAI-compatible chat API.
func NewOpenAI(cfg OpenAIConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenAIBase
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &openAIProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type oaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaiRequest struct {
	Model       string       `json:"model"`
	Messages    []oaiMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
}

type oaiChoice struct {
	Message oaiMessage `json:"message"`
}

type oaiResponse struct {
	Choices []oaiChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (p *openAIProvider) Name() string { return "openai" }

// Complete sends the conversation and returns the first choice.
func (p *openAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	req := oaiRequest{
		Model:       p.cfg.Model,
		Messages:    make([]oaiMessage, 0, len(messages)),
		Temperature: p.cfg.Options.Temperature,
		MaxTokens:   p.cfg.Options.MaxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, oaiMessage{Role: m.Role, Content: m.Content})
	}

	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("llm: create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("llm: http request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("llm: read response body: %w", err)
	}

	var oaiResp oaiResponse
	if err := json.Unmarshal(body, &oaiResp); err != nil {
		return "", fmt.Errorf("llm: decode API response (HTTP %d): %w", httpResp.StatusCode, err)
	}

	if oaiResp.Error != nil {
		return "", fmt.Errorf("llm: API error (%s): %s", oaiResp.Error.Type, oaiResp.Error.Message)
	}
	if httpResp.StatusCode >= 300 {
		return "", fmt.Errorf("llm: unexpected HTTP status %d", httpResp.StatusCode)
	}
	if len(oaiResp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(oaiResp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
