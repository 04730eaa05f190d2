package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plume-labs/plume-cli/internal/adapters/driven/storage/memory"
	"github.com/plume-labs/plume-cli/internal/core/domain"
)

func TestFileSnapshotter_WritesTimestampedCopy(t *testing.T) {
	store := memory.NewProjectStore()
	dir := t.TempDir()
	snapshotter, err := NewFileSnapshotter(store, dir)
	require.NoError(t, err)

	project := domain.NewProject("owner-1")
	project.Timeline.Events = []domain.Event{{ID: "a", Time: "10:00", Description: "ceremony"}}
	require.NoError(t, store.Save(context.Background(), project))

	snapshot, err := snapshotter.Snapshot(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, snapshot.ID)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), project.ID)
	assert.Contains(t, entries[0].Name(), ".json")

	// The file is a readable JSON copy of the full project.
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	var restored domain.Project
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, project.ID, restored.ID)
	require.Len(t, restored.Timeline.Events, 1)
	assert.Equal(t, "ceremony", restored.Timeline.Events[0].Description)
}

func TestFileSnapshotter_ReturnsDetachedCopy(t *testing.T) {
	store := memory.NewProjectStore()
	snapshotter, err := NewFileSnapshotter(store, t.TempDir())
	require.NoError(t, err)

	project := domain.NewProject("owner-1")
	project.Timeline.Events = []domain.Event{{ID: "a", Time: "10:00", Description: "ceremony"}}
	require.NoError(t, store.Save(context.Background(), project))

	snapshot, err := snapshotter.Snapshot(context.Background(), project.ID)
	require.NoError(t, err)
	snapshot.Timeline.Events[0].Description = "changed"

	stored, err := store.Get(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, "ceremony", stored.Timeline.Events[0].Description)
}

func TestFileSnapshotter_UnknownProject(t *testing.T) {
	store := memory.NewProjectStore()
	dir := t.TempDir()
	snapshotter, err := NewFileSnapshotter(store, dir)
	require.NoError(t, err)

	_, err = snapshotter.Snapshot(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no file written on failure")
}
