package portfolio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/storage"
	"github.com/folio/folio/pkg/storage/memory"
)

type publishedEvent struct {
	Type    string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(eventType string, payload any) {
	p.mu.Lock()
	p.events = append(p.events, publishedEvent{Type: eventType, Payload: payload})
	p.mu.Unlock()
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeNotifier struct {
	mu       sync.Mutex
	alerts   []string
	replies  []string
	alertErr error
	replyErr error
}

func (n *fakeNotifier) NotifyNewMessage(_ context.Context, name, email, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, name+"|"+email+"|"+subject+"|"+body)
	return n.alertErr
}

func (n *fakeNotifier) SendReply(_ context.Context, to, text string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.replyErr != nil {
		return "", n.replyErr
	}
	n.replies = append(n.replies, to+"|"+text)
	return "email-42", nil
}

type fixture struct {
	svc      *Service
	events   *recordingPublisher
	notifier *fakeNotifier
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		events:   &recordingPublisher{},
		notifier: &fakeNotifier{},
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time {
		f.now = f.now.Add(time.Second)
		return f.now
	}
	f.svc = NewService(memory.NewMemoryStorage(),
		WithClock(clock),
		WithLogger(logger.Nop()),
		WithEvents(f.events),
		WithNotifier(f.notifier),
	)
	return f
}

func ptr[T any](v T) *T { return &v }

func TestHero_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	h, err := f.svc.CreateHero(ctx, HeroInput{Title: "Engineer", Subtitle: "Backend", ViewButtonText: "View"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.ID)

	updated, err := f.svc.UpdateHero(ctx, h.ID, HeroPatch{Subtitle: ptr("Backend and AI")})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", updated.Title, "unset fields are kept")
	assert.Equal(t, "Backend and AI", updated.Subtitle)
	assert.Equal(t, "View", updated.ViewButtonText)

	got, err := f.svc.GetHero(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, f.svc.DeleteHero(ctx, h.ID))

	_, err = f.svc.GetHero(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Hero with id 1 not found")

	err = f.svc.DeleteHero(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateHero(ctx, 99, HeroPatch{})
	assert.EqualError(t, err, "Hero with id 99 not found")

	assert.Equal(t, []string{EventContentChanged, EventContentChanged, EventContentChanged}, f.events.Types())
}

// deleteBeforeUpdateStore deletes the record just before every Update,
// standing in for a concurrent delete landing between read and write.
type deleteBeforeUpdateStore struct {
	storage.Store
}

func (s deleteBeforeUpdateStore) Update(ctx context.Context, collection string, id int64, data []byte) error {
	_ = s.Store.Delete(ctx, collection, id)
	return s.Store.Update(ctx, collection, id, data)
}

func TestUpdate_DoesNotResurrectDeletedRecords(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemoryStorage()
	svc := NewService(deleteBeforeUpdateStore{Store: store}, WithLogger(logger.Nop()))

	h, err := svc.CreateHero(ctx, HeroInput{Title: "Engineer", Subtitle: "Backend"})
	require.NoError(t, err)
	_, err = svc.UpdateHero(ctx, h.ID, HeroPatch{Title: ptr("Architect")})
	assert.EqualError(t, err, "Hero with id 1 not found")
	_, err = svc.GetHero(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := svc.CreateProject(ctx, ProjectInput{Title: "folio", Desc: "portfolio backend"})
	require.NoError(t, err)
	_, err = svc.UpdateProject(ctx, p.ID, ProjectPatch{Desc: ptr("renamed")})
	assert.ErrorIs(t, err, ErrNotFound)
	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	m, err := svc.CreateMessage(ctx, MessageInput{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	svc.Wait()
	_, err = svc.UpdateMessage(ctx, m.ID, MessagePatch{IsRead: ptr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetMessage(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAbout_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.CreateAbout(ctx, AboutInput{Content: "Hello"})
	require.NoError(t, err)
	assert.NotNil(t, a.Skills)
	assert.NotNil(t, a.Education)

	edu := []Education{{Institution: "UNILAG", Degree: "BSc"}}
	a, err = f.svc.UpdateAbout(ctx, a.ID, AboutPatch{Education: &edu, Title: ptr("About me")})
	require.NoError(t, err)
	assert.Equal(t, "Hello", a.Content)
	assert.Equal(t, "About me", a.Title)
	assert.Equal(t, edu, a.Education)

	list, err := f.svc.ListAbout(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.svc.GetAbout(ctx, 5)
	assert.EqualError(t, err, "About section not found")
	assert.EqualError(t, f.svc.DeleteAbout(ctx, 5), "About section not found")
}

func TestProjects_NewestFirstAndTimestamps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateProject(ctx, ProjectInput{Title: "One", Desc: "first"})
	require.NoError(t, err)
	second, err := f.svc.CreateProject(ctx, ProjectInput{Title: "Two", Desc: "second"})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	list, err := f.svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	updated, err := f.svc.UpdateProject(ctx, first.ID, ProjectPatch{Demo: ptr("https://demo.example.com")})
	require.NoError(t, err)
	assert.Equal(t, "One", updated.Title)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(first.UpdatedAt))

	_, err = f.svc.GetProject(ctx, 42)
	assert.EqualError(t, err, "Project not found")
	assert.ErrorIs(t, f.svc.DeleteProject(ctx, 42), ErrNotFound)
	require.NoError(t, f.svc.DeleteProject(ctx, first.ID))
}

func TestSkills_UniqueNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	goSkill, err := f.svc.CreateSkill(ctx, SkillInput{Name: "Go", Category: "Backend"})
	require.NoError(t, err)
	_, err = f.svc.CreateSkill(ctx, SkillInput{Name: "React", Category: "Frontend"})
	require.NoError(t, err)

	_, err = f.svc.CreateSkill(ctx, SkillInput{Name: "Go", Category: "Other"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "Skill with this name already exists")

	_, err = f.svc.UpdateSkill(ctx, goSkill.ID, SkillPatch{Name: ptr("React")})
	assert.ErrorIs(t, err, ErrConflict)

	renamed, err := f.svc.UpdateSkill(ctx, goSkill.ID, SkillPatch{Name: ptr("Go"), Icon: ptr("go.svg")})
	require.NoError(t, err, "keeping the same name is not a conflict")
	assert.Equal(t, "go.svg", renamed.Icon)
	assert.Equal(t, "Backend", renamed.Category)

	_, err = f.svc.GetSkill(ctx, 77)
	assert.EqualError(t, err, "Skill not found")
	_, err = f.svc.UpdateSkill(ctx, 77, SkillPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.svc.DeleteSkill(ctx, goSkill.ID))
	_, err = f.svc.CreateSkill(ctx, SkillInput{Name: "Go", Category: "Backend"})
	assert.NoError(t, err, "name is free again after delete")
}

func TestSkills_ConcurrentCreateSameName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		created  int
		conflict int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateSkill(ctx, SkillInput{Name: "Rust", Category: "Systems"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else if errors.Is(err, ErrConflict) {
				conflict++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 19, conflict)
}
