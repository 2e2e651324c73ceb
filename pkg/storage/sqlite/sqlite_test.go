package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/storage"
)

func TestSQLiteStorageSuite(t *testing.T) {
	suite := &storage.StoreTestSuite{
		NewStore: func(t *testing.T) storage.Store {
			s, err := Open(filepath.Join(t.TempDir(), "folio.db"))
			require.NoError(t, err)
			return s
		},
	}
	suite.RunAllTests(t)
}

func TestSQLiteStorage_InMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	id, err := s.NextID(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestSQLiteStorage_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "folio.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, path)
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.NextID(ctx, "skills")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, "skills", id, []byte(`{"name":"Go"}`)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	body, err := s.Get(ctx, "skills", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Go"}`, string(body))

	next, err := s.NextID(ctx, "skills")
	require.NoError(t, err)
	assert.Equal(t, id+1, next)
}

func TestSQLiteStorage_PingAfterClose(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	var unavailable *storage.StorageUnavailableError
	assert.True(t, errors.As(s.Ping(context.Background()), &unavailable))
}
