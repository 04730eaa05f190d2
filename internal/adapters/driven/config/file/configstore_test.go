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

	require.NoError(t, store.Set("project.owner", "robin"))
	require.NoError(t, store.Set("import.retries", int64(3)))
	require.NoError(t, store.Set("backup.enabled", true))

	assert.Equal(t, "robin", store.GetString("project.owner"))
	assert.Equal(t, 3, store.GetInt("import.retries"))
	assert.True(t, store.GetBool("backup.enabled"))
}

func TestConfigStore_MissingKeysReturnZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("nope"))
	assert.Equal(t, 0, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("import.strategy", "merge"))

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "merge", reloaded.GetString("import.strategy"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[storage]\ndata_dir = \"/tmp/plume\"\n\n[project]\nowner = \"robin\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/plume", store.GetString("storage.data_dir"))
	assert.Equal(t, "robin", store.GetString("project.owner"))
}
