package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "http://localhost:8080"))
	require.NoError(t, store.Set("gallery.page_size", 25))
	require.NoError(t, store.Set("api.requests_per_second", 2.5))

	assert.Equal(t, "http://localhost:8080", store.GetString("api.base_url"))
	assert.Equal(t, 25, store.GetInt("gallery.page_size"))
	assert.Equal(t, 2.5, store.GetFloat("api.requests_per_second"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("gallery.page_size", 40))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 40, second.GetInt("gallery.page_size"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[api]\nbase_url = \"http://example.test\"\ntimeout_seconds = 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test", store.GetString("api.base_url"))
	assert.Equal(t, 30, store.GetInt("api.timeout_seconds"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("anything"))
	assert.Equal(t, 0, store.GetInt("anything"))
}

func TestConfigStore_TypeMismatchFallsBackToZero(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "not a number"))
	assert.Equal(t, 0, store.GetInt("key"))
	assert.Equal(t, 0.0, store.GetFloat("key"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
