package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_ReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.json")

	require.NoError(t, writeFile(path, []byte("one"), 0o600))
	require.NoError(t, writeFile(path, []byte("two"), 0o600))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadJSON_Missing(t *testing.T) {
	var v map[string]any
	found, err := readJSON(filepath.Join(t.TempDir(), "absent.json"), &v)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.json")
	require.NoError(t, writeJSON(path, map[string]string{"a": "b"}, 0o600))

	var v map[string]string
	found, err := readJSON(path, &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", v["a"])
}
