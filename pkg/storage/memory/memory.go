// Package memory provides an in-memory implementation of the storage interface.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/folio/folio/pkg/storage"
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("memory store closed")

// MemoryStorage implements the Store interface using in-memory maps.
type MemoryStorage struct {
	mu          sync.RWMutex
	collections map[string]map[int64][]byte
	sequences   map[string]int64
	closed      bool
}

// NewMemoryStorage creates a new in-memory storage instance.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		collections: make(map[string]map[int64][]byte),
		sequences:   make(map[string]int64),
	}
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

// Create inserts a record unless the id already exists.
func (m *MemoryStorage) Create(ctx context.Context, collection string, id int64, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	records := m.collection(collection)
	if _, exists := records[id]; exists {
		return &storage.DuplicateKeyError{Collection: collection, ID: id}
	}
	records[id] = clone(data)
	return nil
}

// Put inserts or replaces a record.
func (m *MemoryStorage) Put(ctx context.Context, collection string, id int64, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	m.collection(collection)[id] = clone(data)
	return nil
}

// Get retrieves a record by id.
func (m *MemoryStorage) Get(ctx context.Context, collection string, id int64) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	data, exists := m.collections[collection][id]
	if !exists {
		return nil, &storage.NotFoundError{Collection: collection, ID: id}
	}
	return clone(data), nil
}

// List returns the collection ordered by id.
func (m *MemoryStorage) List(ctx context.Context, collection string) ([]storage.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	records := make([]storage.Record, 0, len(m.collections[collection]))
	for id, data := range m.collections[collection] {
		records = append(records, storage.Record{ID: id, Data: clone(data)})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// Update replaces an existing record.
func (m *MemoryStorage) Update(ctx context.Context, collection string, id int64, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	records := m.collections[collection]
	if _, exists := records[id]; !exists {
		return &storage.NotFoundError{Collection: collection, ID: id}
	}
	records[id] = clone(data)
	return nil
}

// Delete removes a record.
func (m *MemoryStorage) Delete(ctx context.Context, collection string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	records := m.collections[collection]
	if _, exists := records[id]; !exists {
		return &storage.NotFoundError{Collection: collection, ID: id}
	}
	delete(records, id)
	return nil
}

// NextID increments the collection sequence.
func (m *MemoryStorage) NextID(ctx context.Context, collection string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, &storage.StorageUnavailableError{Cause: ErrClosed}
	}

	m.sequences[collection]++
	return m.sequences[collection], nil
}

// Ping reports whether the store is open.
func (m *MemoryStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return &storage.StorageUnavailableError{Cause: ErrClosed}
	}
	return nil
}

// Close marks the store closed. Data is discarded.
func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.collections = nil
	m.sequences = nil
	return nil
}

// collection returns the map for name, creating it. Callers hold the write lock.
func (m *MemoryStorage) collection(name string) map[int64][]byte {
	records, ok := m.collections[name]
	if !ok {
		records = make(map[int64][]byte)
		m.collections[name] = records
	}
	return records
}
