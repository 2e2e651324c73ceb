// Package portfolio implements the CRUD services behind the public site and
// the admin panel.
package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/storage"
)

// Event types published by the service.
const (
	EventMessageCreated = "message.created"
	EventMessageUpdated = "message.updated"
	EventMessageDeleted = "message.deleted"
	EventContentChanged = "content.changed"
)

// EventPublisher receives change notifications for the admin live feed.
type EventPublisher interface {
	Publish(eventType string, payload any)
}

// Notifier delivers contact-form e-mail.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, name, email, subject, body string) error
	SendReply(ctx context.Context, to, text string) (string, error)
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEvents sets the change publisher.
func WithEvents(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

// WithNotifier sets the e-mail notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithNotifyTimeout bounds background admin notifications.
func WithNotifyTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

// Service owns the portfolio collections.
type Service struct {
	store         storage.Store
	now           func() time.Time
	log           logger.Logger
	events        EventPublisher
	notifier      Notifier
	notifyTimeout time.Duration
	notifyWG      sync.WaitGroup
	skillMu       sync.Mutex

	heroes   *storage.Collection[Hero]
	abouts   *storage.Collection[About]
	projects *storage.Collection[Project]
	skills   *storage.Collection[Skill]
	messages *storage.Collection[Message]
	docs     *storage.Collection[Document]
}

// NewService creates a Service over store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:         store,
		now:           time.Now,
		log:           logger.Global(),
		events:        nopPublisher{},
		notifyTimeout: 10 * time.Second,
		heroes:        storage.NewCollection[Hero](store, CollectionHero),
		abouts:        storage.NewCollection[About](store, CollectionAbout),
		projects:      storage.NewCollection[Project](store, CollectionProjects),
		skills:        storage.NewCollection[Skill](store, CollectionSkills),
		messages:      storage.NewCollection[Message](store, CollectionMessages),
		docs:          storage.NewCollection[Document](store, CollectionDocuments),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wait blocks until background notifications have finished.
func (s *Service) Wait() {
	s.notifyWG.Wait()
}

func (s *Service) timestamp() time.Time {
	return s.now().UTC()
}

func (s *Service) contentChanged(resource, action string, id int64) {
	s.events.Publish(EventContentChanged, map[string]any{
		"resource": resource,
		"action":   action,
		"id":       id,
	})
}

// reverse returns items in descending id order.
func reverse[T any](items []T) []T {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
