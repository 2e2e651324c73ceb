package portfolio

import (
	"errors"
	"fmt"

	"github.com/folio/folio/pkg/storage"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrConflict is matched by every ConflictError.
	ErrConflict = errors.New("conflict")

	// ErrDeliveryFailed reports that an outbound e-mail could not be sent.
	ErrDeliveryFailed = errors.New("delivery failed")
)

// NotFoundError reports a missing record with a visitor-facing message.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	switch e.Resource {
	case CollectionHero:
		return fmt.Sprintf("Hero with id %d not found", e.ID)
	case CollectionAbout:
		return "About section not found"
	case CollectionProjects:
		return "Project not found"
	case CollectionSkills:
		return "Skill not found"
	case CollectionMessages:
		return "Message not found"
	default:
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	}
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrConflict) true.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// translate maps store-level errors onto domain errors.
func translate(resource string, id int64, err error) error {
	if err == nil {
		return nil
	}
	var nf *storage.NotFoundError
	if errors.As(err, &nf) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return fmt.Errorf("%s %d: %w", resource, id, err)
}
