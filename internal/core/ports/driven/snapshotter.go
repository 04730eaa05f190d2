package driven

import (
	"context"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

// Snapshotter captures a full copy of a project before a destructive merge,
// for rollback by hand. Snapshot failures must abort the import before any
// mutation.
type Snapshotter interface {
	// Snapshot returns a deep, detached copy of the project.
	Snapshot(ctx context.Context, projectID string) (*domain.Project, error)
}
