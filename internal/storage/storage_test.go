// internal/storage/storage_test.go
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetRoundTrip(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	type record struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}

	want := record{Name: "solitaire", Count: 3, Tags: []string{"platinum", "oval"}}
	store.Set("record", want)

	got := Get(store, "record", record{})
	assert.Equal(t, want, got)
}

func TestGetMissingKeyReturnsFallback(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	got := Get(store, "nope", []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
}

func TestGetCorruptValueReturnsFallback(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	assert.NotPanics(t, func() {
		got := Get(store, "broken", 42)
		assert.Equal(t, 42, got)
	})
}

func TestSetOverwritesPreviousValue(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	store.Set("counter", 1)
	store.Set("counter", 2)

	assert.Equal(t, 2, Get(store, "counter", 0))
}

func TestDelete(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	store.Set("gone", "value")
	store.Delete("gone")

	assert.Equal(t, "fallback", Get(store, "gone", "fallback"))

	// Deleting an absent key must not panic or log-fatal.
	assert.NotPanics(t, func() { store.Delete("never-existed") })
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := Open(dir)
	require.NoError(t, err)

	store.Set("k", "v")
	assert.Equal(t, "v", Get(store, "k", ""))
}
