package chatbot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/folio/folio/pkg/llm"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeProvider struct {
	mu     sync.Mutex
	calls  [][]llm.Message
	reply  string
	err    error
	block  bool
	replyf func(n int) string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	p.mu.Lock()
	cp := make([]llm.Message, len(messages))
	copy(cp, messages)
	p.calls = append(p.calls, cp)
	n := len(p.calls)
	p.mu.Unlock()

	if p.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if p.err != nil {
		return "", p.err
	}
	if p.replyf != nil {
		return p.replyf(n), nil
	}
	return p.reply, nil
}

func (p *fakeProvider) Calls() [][]llm.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeSource struct {
	projects []ProjectInfo
	skills   []SkillInfo
	about    *AboutInfo
	hero     *HeroInfo
	docs     []DocumentInfo
	failOn   string
}

var errSource = errors.New("source unavailable")

func (s *fakeSource) fail(section string) error {
	if s.failOn == section {
		return errSource
	}
	return nil
}

func (s *fakeSource) Projects(context.Context) ([]ProjectInfo, error) {
	return s.projects, s.fail("projects")
}

func (s *fakeSource) Skills(context.Context) ([]SkillInfo, error) {
	return s.skills, s.fail("skills")
}

func (s *fakeSource) About(context.Context) (*AboutInfo, error) {
	return s.about, s.fail("about")
}

func (s *fakeSource) Hero(context.Context) (*HeroInfo, error) {
	return s.hero, s.fail("hero")
}

func (s *fakeSource) Documents(context.Context) ([]DocumentInfo, error) {
	return s.docs, s.fail("documents")
}

type recordedChat struct {
	outcome string
}

type fakeRecorder struct {
	mu         sync.Mutex
	chats      []recordedChat
	inferences int
	failures   int
}

func (r *fakeRecorder) RecordChat(outcome string, _ time.Duration) {
	r.mu.Lock()
	r.chats = append(r.chats, recordedChat{outcome: outcome})
	r.mu.Unlock()
}

func (r *fakeRecorder) RecordInference(_ string, _ time.Duration, err error) {
	r.mu.Lock()
	r.inferences++
	if err != nil {
		r.failures++
	}
	r.mu.Unlock()
}
