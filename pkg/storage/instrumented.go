package storage

import (
	"context"
	"errors"
	"time"
)

// Observer receives the outcome of every store operation.
type Observer interface {
	ObserveStorage(operation, collection string, duration time.Duration, err error)
}

// Instrument wraps store so each call is reported to obs. Missing records
// and duplicate ids are reported as successful operations.
func Instrument(store Store, obs Observer) Store {
	if obs == nil {
		return store
	}
	return &instrumentedStore{next: store, obs: obs}
}

type instrumentedStore struct {
	next Store
	obs  Observer
}

func (s *instrumentedStore) observe(op, collection string, start time.Time, err error) {
	var nf *NotFoundError
	var dup *DuplicateKeyError
	if errors.As(err, &nf) || errors.As(err, &dup) {
		err = nil
	}
	s.obs.ObserveStorage(op, collection, time.Since(start), err)
}

func (s *instrumentedStore) Create(ctx context.Context, collection string, id int64, data []byte) error {
	start := time.Now()
	err := s.next.Create(ctx, collection, id, data)
	s.observe("create", collection, start, err)
	return err
}

func (s *instrumentedStore) Put(ctx context.Context, collection string, id int64, data []byte) error {
	start := time.Now()
	err := s.next.Put(ctx, collection, id, data)
	s.observe("put", collection, start, err)
	return err
}

func (s *instrumentedStore) Update(ctx context.Context, collection string, id int64, data []byte) error {
	start := time.Now()
	err := s.next.Update(ctx, collection, id, data)
	s.observe("update", collection, start, err)
	return err
}

func (s *instrumentedStore) Get(ctx context.Context, collection string, id int64) ([]byte, error) {
	start := time.Now()
	data, err := s.next.Get(ctx, collection, id)
	s.observe("get", collection, start, err)
	return data, err
}

func (s *instrumentedStore) List(ctx context.Context, collection string) ([]Record, error) {
	start := time.Now()
	records, err := s.next.List(ctx, collection)
	s.observe("list", collection, start, err)
	return records, err
}

func (s *instrumentedStore) Delete(ctx context.Context, collection string, id int64) error {
	start := time.Now()
	err := s.next.Delete(ctx, collection, id)
	s.observe("delete", collection, start, err)
	return err
}

func (s *instrumentedStore) NextID(ctx context.Context, collection string) (int64, error) {
	start := time.Now()
	id, err := s.next.NextID(ctx, collection)
	s.observe("next_id", collection, start, err)
	return id, err
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
