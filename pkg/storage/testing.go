package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// StoreTestSuite defines a test suite that can be run against any Store implementation.
type StoreTestSuite struct {
	NewStore func(t *testing.T) Store
}

// RunAllTests runs all store tests against the provided implementation.
func (s *StoreTestSuite) RunAllTests(t *testing.T) {
	t.Run("RecordCRUD", s.TestRecordCRUD)
	t.Run("CreateDuplicate", s.TestCreateDuplicate)
	t.Run("ListOrdering", s.TestListOrdering)
	t.Run("CollectionsIsolated", s.TestCollectionsIsolated)
	t.Run("SequencePerCollection", s.TestSequencePerCollection)
	t.Run("ConcurrentSequence", s.TestConcurrentSequence)
	t.Run("NotFound", s.TestNotFound)
	t.Run("UpdateExistingOnly", s.TestUpdateExistingOnly)
	t.Run("Ping", s.TestPing)
}

// TestRecordCRUD tests basic create, read, replace and delete.
func (s *StoreTestSuite) TestRecordCRUD(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.Create(ctx, "projects", 1, []byte(`{"title":"folio"}`)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Get(ctx, "projects", 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"title":"folio"}` {
		t.Errorf("unexpected body %s", got)
	}

	if err := store.Put(ctx, "projects", 1, []byte(`{"title":"renamed"}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err = store.Get(ctx, "projects", 1)
	if err != nil {
		t.Fatalf("Get after Put failed: %v", err)
	}
	if string(got) != `{"title":"renamed"}` {
		t.Errorf("Put did not replace body, got %s", got)
	}

	if err := store.Delete(ctx, "projects", 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "projects", 1); err == nil {
		t.Error("expected error when getting deleted record")
	}
}

// TestCreateDuplicate tests that Create refuses an existing id.
func (s *StoreTestSuite) TestCreateDuplicate(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.Create(ctx, "skills", 7, []byte(`{}`)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err := store.Create(ctx, "skills", 7, []byte(`{"name":"dup"}`))
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dup.Collection != "skills" || dup.ID != 7 {
		t.Errorf("unexpected duplicate error fields: %+v", dup)
	}

	got, _ := store.Get(ctx, "skills", 7)
	if string(got) != `{}` {
		t.Errorf("duplicate create must not overwrite, got %s", got)
	}
}

// TestListOrdering tests that List returns ascending ids regardless of insert order.
func (s *StoreTestSuite) TestListOrdering(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	for _, id := range []int64{12, 3, 100, 1} {
		if err := store.Put(ctx, "messages", id, []byte(fmt.Sprintf(`{"n":%d}`, id))); err != nil {
			t.Fatalf("Put %d failed: %v", id, err)
		}
	}

	records, err := store.List(ctx, "messages")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []int64{1, 3, 12, 100}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, r := range records {
		if r.ID != want[i] {
			t.Errorf("record %d: expected id %d, got %d", i, want[i], r.ID)
		}
		if string(r.Data) != fmt.Sprintf(`{"n":%d}`, want[i]) {
			t.Errorf("record %d: unexpected body %s", i, r.Data)
		}
	}

	empty, err := store.List(ctx, "nothing-here")
	if err != nil {
		t.Fatalf("List of empty collection failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty list, got %d", len(empty))
	}
}

// TestCollectionsIsolated tests that equal ids in different collections do not collide.
func (s *StoreTestSuite) TestCollectionsIsolated(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	_ = store.Put(ctx, "hero", 1, []byte(`"hero"`))
	_ = store.Put(ctx, "about", 1, []byte(`"about"`))

	if err := store.Delete(ctx, "hero", 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err := store.Get(ctx, "about", 1)
	if err != nil {
		t.Fatalf("other collection affected: %v", err)
	}
	if string(got) != `"about"` {
		t.Errorf("unexpected body %s", got)
	}
}

// TestSequencePerCollection tests NextID numbering.
func (s *StoreTestSuite) TestSequencePerCollection(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		id, err := store.NextID(ctx, "projects")
		if err != nil {
			t.Fatalf("NextID failed: %v", err)
		}
		if id != want {
			t.Errorf("expected id %d, got %d", want, id)
		}
	}

	id, err := store.NextID(ctx, "skills")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != 1 {
		t.Errorf("expected independent sequence starting at 1, got %d", id)
	}
}

// TestConcurrentSequence tests that concurrent NextID calls never hand out the same id.
func (s *StoreTestSuite) TestConcurrentSequence(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]bool)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.NextID(ctx, "messages")
			if err != nil {
				errs <- err
				return
			}
			if err := store.Create(ctx, "messages", id, []byte(`{}`)); err != nil {
				errs <- err
				return
			}
			mu.Lock()
			seen[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent operation failed: %v", err)
	}
	if len(seen) != workers {
		t.Errorf("expected %d distinct ids, got %d", workers, len(seen))
	}
}

// TestNotFound tests NotFoundError for Get and Delete.
func (s *StoreTestSuite) TestNotFound(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	_, err := store.Get(ctx, "hero", 42)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError from Get, got %v", err)
	}
	if nf.Collection != "hero" || nf.ID != 42 {
		t.Errorf("unexpected not found fields: %+v", nf)
	}

	if err := store.Delete(ctx, "hero", 42); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError from Delete, got %v", err)
	}
}

// TestUpdateExistingOnly tests that Update replaces a live record and never
// brings back a deleted one.
func (s *StoreTestSuite) TestUpdateExistingOnly(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()
	ctx := context.Background()

	if err := store.Create(ctx, "skills", 1, []byte(`{"name":"Go"}`)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Update(ctx, "skills", 1, []byte(`{"name":"Golang"}`)); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := store.Get(ctx, "skills", 1)
	if err != nil {
		t.Fatalf("Get after Update failed: %v", err)
	}
	if string(got) != `{"name":"Golang"}` {
		t.Errorf("Update did not replace body, got %s", got)
	}

	if err := store.Delete(ctx, "skills", 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	var nf *NotFoundError
	if err := store.Update(ctx, "skills", 1, []byte(`{"name":"zombie"}`)); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError from Update after Delete, got %v", err)
	}
	if _, err := store.Get(ctx, "skills", 1); !errors.As(err, &nf) {
		t.Errorf("Update recreated a deleted record")
	}
	if err := store.Update(ctx, "skills", 99, []byte(`{}`)); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for a never-created id, got %v", err)
	}
}

// TestPing tests that an open store is reachable.
func (s *StoreTestSuite) TestPing(t *testing.T) {
	store := s.NewStore(t)
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
