package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibe_tracker/internal/app/port"
)

func storeContract(t *testing.T, s port.KeyValueStore) {
	t.Helper()

	_, err := s.Get("forTrade")
	assert.ErrorIs(t, err, port.ErrNotFound)

	require.NoError(t, s.Set("forTrade", []byte(`[{"id":"1"}]`)))
	got, err := s.Get("forTrade")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Set("forTrade", []byte(`[]`)))
	got, err = s.Get("forTrade")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	require.NoError(t, s.Clear("forTrade"))
	require.NoError(t, s.Clear("forTrade"))
	_, err = s.Get("forTrade")
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Set("k", buf))
	buf[0] = 'z'

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, s)
}

func TestFileStore_KeyIsEscaped(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("../escape", []byte("x")))
	assert.FileExists(t, s.path("../escape"))
	assert.Contains(t, s.path("../escape"), dir)
}
