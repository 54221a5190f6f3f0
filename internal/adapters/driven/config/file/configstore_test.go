package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store.Set("catalog.path", "/tmp/rules.toml")

	val, ok := store.Get("catalog.path")
	assert.True(t, ok)
	assert.Equal(t, "/tmp/rules.toml", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store.Set(KeyCatalogPath, "/data/rules.toml")
	assert.Equal(t, "/data/rules.toml", store.GetString(KeyCatalogPath))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Wrong type
	store.Set("int_key", 42)
	assert.Equal(t, "", store.GetString("int_key"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store.Set(KeySearchDebounceMs, 450)
	assert.Equal(t, 450, store.GetInt(KeySearchDebounceMs))

	store.Set("int64_key", int64(7))
	assert.Equal(t, 7, store.GetInt("int64_key"))

	assert.Equal(t, 0, store.GetInt("nonexistent"))

	store.Set("string_key", "not a number")
	assert.Equal(t, 0, store.GetInt("string_key"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	store.Set(KeyNearbyRadiusKm, 300.5)
	assert.Equal(t, 300.5, store.GetFloat(KeyNearbyRadiusKm))

	// TOML integers widen to float
	store.Set("whole_km", int64(300))
	assert.Equal(t, 300.0, store.GetFloat("whole_km"))

	assert.Equal(t, 0.0, store.GetFloat("nonexistent"))
}

func TestConfigStore_SaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.Set(KeySearchDebounceMs, int64(300))
	store.Set(KeyNearbyMaxResults, int64(5))
	store.Set(KeyCatalogPath, "/data/rules.toml")
	require.NoError(t, store.Save())

	// A fresh store sees the persisted values through the dotted keys.
	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 300, reloaded.GetInt(KeySearchDebounceMs))
	assert.Equal(t, 5, reloaded.GetInt(KeyNearbyMaxResults))
	assert.Equal(t, "/data/rules.toml", reloaded.GetString(KeyCatalogPath))
}

func TestConfigStore_SavedFileIsNested(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	store.Set(KeySearchDebounceMs, int64(450))
	require.NoError(t, store.Save())

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[search]")
	assert.Contains(t, string(raw), "debounce_ms")
}

func TestConfigStore_LoadMissingFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}
