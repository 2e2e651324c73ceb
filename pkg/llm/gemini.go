package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig configures the Google Gemini provider.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Options Options
}

// contentGenerator is the part of genai.Models the provider uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiProvider struct {
	models contentGenerator
	model  string
	opts   Options
}

// NewGemini creates a Gemini client.
func NewGemini(ctx context.Context, cfg GeminiConfig) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create genai client: %w", err)
	}
	return newGeminiProvider(client.Models, cfg), nil
}

func newGeminiProvider(models contentGenerator, cfg GeminiConfig) *geminiProvider {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &geminiProvider{models: models, model: model, opts: cfg.Options}
}

func (p *geminiProvider) Name() string { return "gemini" }

// Complete maps system turns onto the system instruction and the rest onto
// user/model contents.
func (p *geminiProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	contents, system := toGeminiContents(messages)

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(p.opts.Temperature)),
	}
	if p.opts.MaxTokens > 0 {
		config.MaxOutputTokens = int32(p.opts.MaxTokens)
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := p.models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("llm: gemini generate: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func toGeminiContents(messages []Message) ([]*genai.Content, string) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents, strings.Join(system, "\n\n")
}
