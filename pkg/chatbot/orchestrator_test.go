package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/llm"
	"github.com/folio/folio/pkg/logger"
)

type harness struct {
	clock    *fakeClock
	provider *fakeProvider
	source   *fakeSource
	rec      *fakeRecorder
	bot      *Orchestrator
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{
		clock:    newFakeClock(),
		provider: &fakeProvider{reply: "I have built several projects."},
		source:   &fakeSource{hero: &HeroInfo{Title: "Engineer", Subtitle: "Go"}},
		rec:      &fakeRecorder{},
	}
	h.bot = New(h.provider, h.source, Profile{Name: "Tunji Paul"},
		WithConfig(cfg),
		WithClock(h.clock.Now),
		WithLogger(logger.Nop()),
		WithRecorder(h.rec),
	)
	return h
}

func TestChat_CacheScenario(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	ctx := context.Background()

	first, err := h.bot.Chat(ctx, Request{Message: "What projects have you built?", ClientID: "10.0.0.1"})
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "I have built several projects.", first.Response)
	assert.True(t, strings.HasPrefix(first.ConversationID, "10.0.0.1_"))
	require.Len(t, h.provider.Calls(), 1)

	h.clock.Advance(time.Second)
	second, err := h.bot.Chat(ctx, Request{Message: "what projects have you built?  ", ClientID: "10.0.0.1"})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Response, second.Response)
	assert.NotEqual(t, first.ConversationID, second.ConversationID, "ids without a client value are never shared")
	assert.Len(t, h.provider.Calls(), 1, "cache hit skips inference")

	assert.Len(t, h.bot.State().Memory.History(first.ConversationID), 2)
	assert.Empty(t, h.bot.State().Memory.History(second.ConversationID), "cache hit leaves memory untouched")
}

func TestChat_CacheHitReusesConversationID(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	ctx := context.Background()

	_, err := h.bot.Chat(ctx, Request{Message: "hi", ConversationID: "conv-1", ClientID: "c"})
	require.NoError(t, err)

	resp, err := h.bot.Chat(ctx, Request{Message: "hi", ConversationID: "conv-2", ClientID: "c"})
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, "conv-2", resp.ConversationID)
	assert.Empty(t, h.bot.State().Memory.History("conv-2"))
}

func TestChat_CacheExpires(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	ctx := context.Background()

	_, err := h.bot.Chat(ctx, Request{Message: "hi", ClientID: "c"})
	require.NoError(t, err)

	h.clock.Advance(24 * time.Hour)
	resp, err := h.bot.Chat(ctx, Request{Message: "hi", ClientID: "c"})
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Len(t, h.provider.Calls(), 2)
}

func TestChat_Validation(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "empty", message: "", want: "Message cannot be empty"},
		{name: "whitespace", message: " \n\t ", want: "Message cannot be empty"},
		{name: "too long", message: strings.Repeat("a", 501), want: "Message too long (max 500 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, DefaultConfig())

			_, err := h.bot.Chat(context.Background(), Request{Message: tt.message, ClientID: "c"})

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.want, vErr.Message)
			assert.Equal(t, DefaultRateLimit, h.bot.State().Limiter.Remaining("c"), "validation runs before the rate limit")
			assert.Empty(t, h.provider.Calls())
		})
	}
}

func TestChat_LengthCountsCharacters(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	_, err := h.bot.Chat(context.Background(), Request{Message: strings.Repeat("é", 500), ClientID: "c"})
	assert.NoError(t, err)
}

func TestChat_RateLimit(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := h.bot.Chat(ctx, Request{Message: fmt.Sprintf("question %d", i), ClientID: "c"})
		require.NoError(t, err)
	}

	_, err := h.bot.Chat(ctx, Request{Message: "question 0", ClientID: "c"})
	assert.ErrorIs(t, err, ErrRateLimited, "limit applies even to cached messages")
	assert.Greater(t, h.bot.RetryAfter("c"), time.Duration(0))

	h.clock.Advance(time.Minute)
	_, err = h.bot.Chat(ctx, Request{Message: "question 0", ClientID: "c"})
	assert.NoError(t, err)
}

func TestChat_InferenceFailure(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.provider.err = errors.New("upstream 503: secret provider detail")

	_, err := h.bot.Chat(context.Background(), Request{Message: "hi", ConversationID: "conv", ClientID: "c"})
	require.ErrorIs(t, err, ErrInferenceFailed)

	assert.Equal(t, 0, h.bot.State().Cache.Len())
	assert.Empty(t, h.bot.State().Memory.History("conv"))
	assert.Equal(t, 1, h.rec.failures)
}

func TestChat_EmptyCompletionIsFailure(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.provider.reply = "   "

	_, err := h.bot.Chat(context.Background(), Request{Message: "hi", ClientID: "c"})
	assert.ErrorIs(t, err, ErrInferenceFailed)
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)
	assert.Equal(t, 0, h.bot.State().Cache.Len())
}

func TestChat_ContextFailureIsInferenceFailure(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.source.failOn = "skills"

	_, err := h.bot.Chat(context.Background(), Request{Message: "hi", ClientID: "c"})
	assert.ErrorIs(t, err, ErrInferenceFailed)
	assert.Empty(t, h.provider.Calls())
}

func TestChat_InferenceTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InferenceTimeout = 20 * time.Millisecond
	h := newHarness(t, cfg)
	h.provider.block = true

	_, err := h.bot.Chat(context.Background(), Request{Message: "hi", ClientID: "c"})
	assert.ErrorIs(t, err, ErrInferenceFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChat_PromptShape(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.provider.replyf = func(n int) string { return fmt.Sprintf("answer %d", n) }
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := h.bot.Chat(ctx, Request{Message: fmt.Sprintf("question %d", i), ConversationID: "conv", ClientID: "c"})
		require.NoError(t, err)
		h.clock.Advance(10 * time.Second)
	}

	calls := h.provider.Calls()
	require.Len(t, calls, 7)

	last := calls[6]
	require.Len(t, last, 1+5+1, "system, five history turns, user")
	assert.Equal(t, llm.RoleSystem, last[0].Role)
	assert.Contains(t, last[0].Content, "Professional Title: Engineer\nGo\n")
	assert.Equal(t, llm.Message{Role: "assistant", Content: "answer 4"}, last[1])
	assert.Equal(t, llm.Message{Role: "assistant", Content: "answer 6"}, last[5])
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "question 7"}, last[6])

	assert.Len(t, calls[0], 2, "first call has no history")
	assert.Len(t, h.bot.State().Memory.History("conv"), 10)
}

func TestChat_Recorder(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	ctx := context.Background()

	_, _ = h.bot.Chat(ctx, Request{Message: "", ClientID: "c"})
	_, _ = h.bot.Chat(ctx, Request{Message: "hi", ClientID: "c"})
	_, _ = h.bot.Chat(ctx, Request{Message: "hi", ClientID: "c"})

	var outcomes []string
	for _, c := range h.rec.chats {
		outcomes = append(outcomes, c.outcome)
	}
	assert.Equal(t, []string{OutcomeInvalid, OutcomeAnswered, OutcomeCached}, outcomes)
	assert.Equal(t, 1, h.rec.inferences)
}

func TestClearConversationAndStats(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	assert.False(t, h.bot.ClearConversation("missing"))

	_, err := h.bot.Chat(context.Background(), Request{Message: "hi", ConversationID: "conv", ClientID: "c"})
	require.NoError(t, err)

	assert.True(t, h.bot.ClearConversation("conv"))
	assert.Empty(t, h.bot.State().Memory.History("conv"))

	stats := h.bot.CacheStats()
	assert.Equal(t, 1, stats.TotalCached)
	assert.Equal(t, 1, stats.ValidCache)
	assert.Equal(t, 24.0, stats.CacheExpiryHours)
}

func TestConversationIDFormat(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.clock.now = time.Unix(1700000000, 250000000)

	id := h.bot.conversationID(Request{ClientID: "10.0.0.1"})
	assert.Equal(t, "10.0.0.1_1700000000.25", id)
}
