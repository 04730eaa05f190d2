package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportCmd_Merge(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	project.Timeline.Events = []domain.Event{{ID: "a", Time: "10:00", Description: "ceremony"}}
	require.NoError(t, memStore.Save(context.Background(), project))

	path := writeBatchFile(t, `{
		"timeline": [
			{"time": "10:00", "desc": "ceremony"},
			{"time": "16:00", "desc": "cocktails"}
		]
	}`)

	out, err := execute(t, "import", project.ID, path, "--strategy", "merge")
	require.NoError(t, err)
	assert.Contains(t, out, "merge strategy")
	assert.Contains(t, out, "1 existing, 1 added, 2 total")

	stored, err := memStore.Get(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Timeline.Events, 2)
}

func TestImportCmd_ReportsDropped(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	require.NoError(t, memStore.Save(context.Background(), project))

	path := writeBatchFile(t, `{
		"people": [
			{"name": "Sam", "role": "florist"},
			{"name": "", "role": "caterer"}
		]
	}`)

	out, err := execute(t, "import", project.ID, path)
	require.NoError(t, err)
	assert.Contains(t, out, "(1 invalid dropped)")
}

func TestImportCmd_ReplaceWithoutConfirmation(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	require.NoError(t, memStore.Save(context.Background(), project))

	path := writeBatchFile(t, `{"timeline": [{"time": "09:00", "desc": "prep"}]}`)

	// Replace without --yes on a non-terminal stdin must refuse.
	_, err := execute(t, "import", project.ID, path, "--strategy", "replace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	// With --yes it goes through.
	out, err := execute(t, "import", project.ID, path, "--strategy", "replace", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "replace strategy")
}

func TestImportCmd_DefaultsToMerge(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	require.NoError(t, memStore.Save(context.Background(), project))

	path := writeBatchFile(t, `{"photos": [{"title": "First look"}]}`)

	out, err := execute(t, "import", project.ID, path)
	require.NoError(t, err)
	assert.Contains(t, out, "merge strategy")
}

func TestImportCmd_MissingFileArgument(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	require.NoError(t, memStore.Save(context.Background(), project))

	_, err := execute(t, "import", project.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file argument")
}

func TestImportCmd_InvalidStrategy(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	require.NoError(t, memStore.Save(context.Background(), project))

	path := writeBatchFile(t, `{"photos": [{"title": "First look"}]}`)

	_, err := execute(t, "import", project.ID, path, "--strategy", "upsert")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
