// Package chatbot answers visitor questions about the portfolio with a
// hosted language model, guarded by a per-client rate limit, a response
// cache and bounded conversation memory.
package chatbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/folio/folio/pkg/llm"
	"github.com/folio/folio/pkg/logger"
)

const tracerName = "folio.chatbot"

// Chat outcomes reported to the Recorder.
const (
	OutcomeAnswered    = "answered"
	OutcomeCached      = "cached"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

// Request is one chat call.
type Request struct {
	Message        string
	ConversationID string
	ClientID       string
}

// Response is the reply to a chat call.
type Response struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
	Cached         bool   `json:"cached"`
}

// Recorder receives chat instrumentation.
type Recorder interface {
	RecordChat(outcome string, duration time.Duration)
	RecordInference(provider string, duration time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordChat(string, time.Duration)             {}
func (nopRecorder) RecordInference(string, time.Duration, error) {}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithConfig overrides the default chat policy.
func WithConfig(cfg Config) Option {
	return func(o *Orchestrator) { o.cfg = cfg }
}

// WithState injects pre-built chat state.
func WithState(s *State) Option {
	return func(o *Orchestrator) { o.state = s }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRecorder sets the instrumentation sink.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.rec = r
		}
	}
}

// Orchestrator sequences a chat call: validate, rate limit, cache lookup,
// context and history, inference, then cache and memory updates.
type Orchestrator struct {
	cfg       Config
	state     *State
	provider  llm.Provider
	assembler *ContextAssembler
	profile   Profile
	now       func() time.Time
	log       logger.Logger
	rec       Recorder
	tracer    trace.Tracer
}

// New creates an Orchestrator.
func New(provider llm.Provider, source Source, profile Profile, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:       DefaultConfig(),
		provider:  provider,
		assembler: NewContextAssembler(source),
		profile:   profile,
		now:       time.Now,
		log:       logger.Global(),
		rec:       nopRecorder{},
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cfg.MaxMessageLength <= 0 {
		o.cfg.MaxMessageLength = 500
	}
	if o.cfg.MemoryLength <= 0 {
		o.cfg.MemoryLength = DefaultMemoryLength
	}
	if o.state == nil {
		o.state = NewState(o.cfg, o.now)
	}
	return o
}

// State exposes the chat state.
func (o *Orchestrator) State() *State { return o.state }

// Chat answers one message. Errors are *ValidationError, ErrRateLimited or
// ErrInferenceFailed.
func (o *Orchestrator) Chat(ctx context.Context, req Request) (*Response, error) {
	start := o.now()
	ctx, span := o.tracer.Start(ctx, "chatbot.chat", trace.WithAttributes(
		attribute.String("chat.client_id", req.ClientID),
		attribute.Int("chat.message_length", utf8.RuneCountInString(req.Message)),
	))
	defer span.End()

	resp, outcome, err := o.chat(ctx, req)

	span.SetAttributes(attribute.String("chat.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	o.rec.RecordChat(outcome, o.now().Sub(start))
	return resp, err
}

func (o *Orchestrator) chat(ctx context.Context, req Request) (*Response, string, error) {
	if err := o.validate(req.Message); err != nil {
		return nil, OutcomeInvalid, err
	}

	if err := o.state.Limiter.Admit(req.ClientID); err != nil {
		o.log.InfoContext(ctx, "chat rate limited", "client_id", req.ClientID)
		return nil, OutcomeRateLimited, err
	}

	if reply, ok := o.state.Cache.Lookup(req.Message); ok {
		return &Response{
			Response:       reply,
			ConversationID: o.conversationID(req),
			Cached:         true,
		}, OutcomeCached, nil
	}

	conversationID := o.conversationID(req)

	reply, err := o.infer(ctx, conversationID, req.Message)
	if err != nil {
		o.log.ErrorContext(ctx, "chatbot error",
			"conversation_id", conversationID,
			"client_id", req.ClientID,
			"error", err,
		)
		return nil, OutcomeFailed, fmt.Errorf("%w: %w", ErrInferenceFailed, err)
	}

	o.state.Cache.Store(req.Message, reply)
	o.state.Memory.AppendExchange(conversationID, req.Message, reply)

	return &Response{
		Response:       reply,
		ConversationID: conversationID,
		Cached:         false,
	}, OutcomeAnswered, nil
}

func (o *Orchestrator) validate(message string) error {
	if strings.TrimSpace(message) == "" {
		return &ValidationError{Message: "Message cannot be empty"}
	}
	if utf8.RuneCountInString(message) > o.cfg.MaxMessageLength {
		return &ValidationError{Message: fmt.Sprintf("Message too long (max %d characters)", o.cfg.MaxMessageLength)}
	}
	return nil
}

// conversationID reuses the caller's id or derives a fresh one from the
// client and the current time.
func (o *Orchestrator) conversationID(req Request) string {
	if req.ConversationID != "" {
		return req.ConversationID
	}
	ts := float64(o.now().UnixMicro()) / 1e6
	return req.ClientID + "_" + strconv.FormatFloat(ts, 'f', -1, 64)
}

// infer builds the prompt and calls the provider. No chat state lock is held
// while the provider runs.
func (o *Orchestrator) infer(ctx context.Context, conversationID, message string) (string, error) {
	portfolioContext, err := o.assembler.Build(ctx)
	if err != nil {
		return "", fmt.Errorf("build context: %w", err)
	}

	history := o.state.Memory.Recent(conversationID, o.cfg.MemoryLength)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt(o.profile, portfolioContext)})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	if o.cfg.InferenceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.InferenceTimeout)
		defer cancel()
	}

	ctx, span := o.tracer.Start(ctx, "chatbot.inference", trace.WithAttributes(
		attribute.String("llm.provider", o.provider.Name()),
		attribute.Int("llm.messages", len(messages)),
	))
	defer span.End()

	start := o.now()
	reply, err := o.provider.Complete(ctx, messages)
	o.rec.RecordInference(o.provider.Name(), o.now().Sub(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inference failed")
		return "", err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", llm.ErrEmptyResponse
	}
	return reply, nil
}

// ClearConversation drops a conversation's memory and reports whether it
// existed.
func (o *Orchestrator) ClearConversation(id string) bool {
	return o.state.Memory.Clear(id)
}

// CacheStats reports the response cache state.
func (o *Orchestrator) CacheStats() CacheStats {
	return o.state.Cache.Stats()
}

// RetryAfter is how long clientID must wait before its next admitted call.
func (o *Orchestrator) RetryAfter(clientID string) time.Duration {
	return o.state.Limiter.RetryAfter(clientID)
}
