package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	s, err := NewBoltKVStore(path, "snapshots", time.Second)
	require.NoError(t, err)

	data, err := s.ReadKey([]byte("repos/github"))
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.UpdateKey([]byte("repos/github"), []byte(`{"Created":1}`)))
	require.NoError(t, s.UpdateKey([]byte("repos/github"), []byte(`{"Created":2}`)))

	data, err = s.ReadKey([]byte("repos/github"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"Created":2}`), data)

	require.NoError(t, s.Close())

	// Data survives reopening.
	s, err = NewBoltKVStore(path, "snapshots", time.Second)
	require.NoError(t, err)
	defer s.Close()

	data, err = s.ReadKey([]byte("repos/github"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"Created":2}`), data)
}

func TestBoltKVStoreLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	s, err := NewBoltKVStore(path, "snapshots", time.Second)
	require.NoError(t, err)
	defer s.Close()

	_, err = NewBoltKVStore(path, "snapshots", 50*time.Millisecond)
	assert.Error(t, err)
}

func TestBoltKVStoreEmptyBucket(t *testing.T) {
	_, err := NewBoltKVStore(filepath.Join(t.TempDir(), "portfolio.db"), "", time.Second)
	assert.Error(t, err)
}
