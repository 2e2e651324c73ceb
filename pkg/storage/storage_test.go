package storage

import (
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatID_SortsNumerically(t *testing.T) {
	ids := []int64{100, 9, 1, 42}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = FormatID(id)
	}
	sort.Strings(keys)

	var parsed []int64
	for _, k := range keys {
		id, err := ParseID(k)
		require.NoError(t, err)
		parsed = append(parsed, id)
	}
	assert.Equal(t, []int64{1, 9, 42, 100}, parsed)
}

func TestParseID_Invalid(t *testing.T) {
	_, err := ParseID("abc")
	assert.Error(t, err)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "projects not found: 3", (&NotFoundError{Collection: "projects", ID: 3}).Error())
	assert.Equal(t, "skills already exists: 1", (&DuplicateKeyError{Collection: "skills", ID: 1}).Error())

	unavailable := &StorageUnavailableError{Cause: io.ErrUnexpectedEOF}
	assert.True(t, errors.Is(unavailable, io.ErrUnexpectedEOF))

	ser := &SerializationError{Operation: "unmarshal", Cause: io.EOF}
	assert.Contains(t, ser.Error(), "unmarshal")
	assert.True(t, errors.Is(ser, io.EOF))
}
