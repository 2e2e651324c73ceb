package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/folio/pkg/storage"
)

// TestMemoryStorageSuite runs the full storage test suite against MemoryStorage.
func TestMemoryStorageSuite(t *testing.T) {
	suite := &storage.StoreTestSuite{
		NewStore: func(t *testing.T) storage.Store {
			return NewMemoryStorage()
		},
	}
	suite.RunAllTests(t)
}

func TestMemoryStorage_CopiesBodies(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	body := []byte(`{"a":1}`)
	require.NoError(t, m.Put(ctx, "hero", 1, body))
	body[2] = 'X'

	got, err := m.Get(ctx, "hero", 1)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	got[2] = 'Y'
	again, _ := m.Get(ctx, "hero", 1)
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestMemoryStorage_Closed(t *testing.T) {
	m := NewMemoryStorage()
	require.NoError(t, m.Close())

	ctx := context.Background()
	var unavailable *storage.StorageUnavailableError

	assert.True(t, errors.As(m.Ping(ctx), &unavailable))
	_, err := m.Get(ctx, "hero", 1)
	assert.True(t, errors.As(err, &unavailable))
	_, err = m.NextID(ctx, "hero")
	assert.True(t, errors.As(err, &unavailable))
	assert.ErrorIs(t, m.Put(ctx, "hero", 1, nil), ErrClosed)
}
