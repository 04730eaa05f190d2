package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

func TestProjectCreateCmd(t *testing.T) {
	memStore := setupTestServices(t)

	out, err := execute(t, "project", "create", "--owner", "robin")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project")
	assert.Contains(t, out, "owner: robin")

	projects, err := memStore.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "robin", projects[0].OwnerID)
}

func TestProjectListCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects yet")
}

func TestProjectShowCmd(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	project.Timeline.Events = []domain.Event{{ID: "a", Time: "10:00", Description: "ceremony"}}
	require.NoError(t, memStore.Save(context.Background(), project))

	out, err := execute(t, "project", "show", project.ID)
	require.NoError(t, err)
	assert.Contains(t, out, project.ID)
	assert.Contains(t, out, "timeline")
	assert.Contains(t, out, "1 records")
}

func TestProjectShowCmd_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "project", "show", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectDeleteCmd(t *testing.T) {
	memStore := setupTestServices(t)

	project := domain.NewProject("robin")
	require.NoError(t, memStore.Save(context.Background(), project))

	out, err := execute(t, "project", "delete", project.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted project")

	_, err = memStore.Get(context.Background(), project.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
