// Package storage provides the record store used to persist portfolio content.
//
// A store holds opaque JSON documents grouped into named collections. Each
// collection has its own monotonically increasing id sequence.
package storage

import (
	"context"
	"fmt"
	"strconv"
)

// Store defines the interface for persistent record operations.
type Store interface {
	// Create inserts a new record. It fails with DuplicateKeyError when the id is taken.
	Create(ctx context.Context, collection string, id int64, data []byte) error

	// Put inserts or replaces a record.
	Put(ctx context.Context, collection string, id int64, data []byte) error

	// Update replaces an existing record or returns NotFoundError. It never
	// recreates a record deleted concurrently.
	Update(ctx context.Context, collection string, id int64, data []byte) error

	// Get returns the record body or NotFoundError.
	Get(ctx context.Context, collection string, id int64) ([]byte, error)

	// List returns every record in the collection ordered by ascending id.
	List(ctx context.Context, collection string) ([]Record, error)

	// Delete removes a record or returns NotFoundError.
	Delete(ctx context.Context, collection string, id int64) error

	// NextID reserves the next id of the collection sequence. Ids start at 1.
	NextID(ctx context.Context, collection string) (int64, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}

// Record is a stored document with its id.
type Record struct {
	ID   int64
	Data []byte
}

// NotFoundError indicates that the requested record was not found.
type NotFoundError struct {
	Collection string
	ID         int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Collection, e.ID)
}

// DuplicateKeyError indicates that a record with the given id already exists.
type DuplicateKeyError struct {
	Collection string
	ID         int64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exists: %d", e.Collection, e.ID)
}

// StorageUnavailableError indicates that the storage backend is unavailable.
type StorageUnavailableError struct {
	Cause error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Cause)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Cause }

// SerializationError indicates a failure in data serialization/deserialization.
type SerializationError struct {
	Operation string
	Cause     error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error during %s: %v", e.Operation, e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

// FormatID renders an id as a fixed-width decimal so lexical order matches numeric order.
func FormatID(id int64) string {
	return fmt.Sprintf("%020d", id)
}

// ParseID reverses FormatID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q: %w", s, err)
	}
	return id, nil
}
