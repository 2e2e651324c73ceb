package storage

import (
	"context"
	"encoding/json"
)

// Collection is a typed, JSON-encoded view over one collection of a Store.
type Collection[T any] struct {
	store Store
	name  string
}

// NewCollection binds a collection name to a store.
func NewCollection[T any](store Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Operation: "marshal", Cause: err}
	}
	return data, nil
}

func decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &SerializationError{Operation: "unmarshal", Cause: err}
	}
	return v, nil
}

// Insert reserves the next id, lets build fill the record, and stores it.
func (c *Collection[T]) Insert(ctx context.Context, build func(id int64) T) (T, error) {
	var zero T

	id, err := c.store.NextID(ctx, c.name)
	if err != nil {
		return zero, err
	}

	v := build(id)
	data, err := encode(v)
	if err != nil {
		return zero, err
	}
	if err := c.store.Create(ctx, c.name, id, data); err != nil {
		return zero, err
	}
	return v, nil
}

// Get loads one record.
func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	data, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](data)
}

// List loads every record ordered by ascending id.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	records, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		v, err := decode[T](r.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// First returns the record with the lowest id, or false when the collection is empty.
func (c *Collection[T]) First(ctx context.Context) (T, bool, error) {
	var zero T
	all, err := c.List(ctx)
	if err != nil || len(all) == 0 {
		return zero, false, err
	}
	return all[0], true, nil
}

// Put replaces a record.
func (c *Collection[T]) Put(ctx context.Context, id int64, v T) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, c.name, id, data)
}

// Update replaces an existing record and fails with NotFoundError when it
// is gone.
func (c *Collection[T]) Update(ctx context.Context, id int64, v T) error {
	data, err := encode(v)
	if err != nil {
		return err
	}
	return c.store.Update(ctx, c.name, id, data)
}

// Delete removes a record.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	return c.store.Delete(ctx, c.name, id)
}
