package driving

import (
	"context"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

// ProjectService manages project lifecycles.
type ProjectService interface {
	// Create creates a new project for an owner, with all sections set to
	// their defaults.
	Create(ctx context.Context, ownerID string) (*domain.Project, error)

	// Get retrieves a project by ID.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// List returns all projects.
	List(ctx context.Context) ([]domain.Project, error)

	// Delete removes a project.
	Delete(ctx context.Context, id string) error
}
