package driven

import (
	"context"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

// ProjectStore is the persistence gateway for project documents.
//
// Patch is the contract the editing core relies on: it must write exactly
// the named sections as a field-scoped, atomic update, reject unknown
// section names, and never rewrite sibling sections. This is a hard
// precondition, not an implementation detail - it is what bounds the blast
// radius of concurrent edit sessions to a single section.
type ProjectStore interface {
	// Save stores or updates a whole project.
	Save(ctx context.Context, project domain.Project) error

	// Get retrieves a project by ID.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// Patch writes only the sections named in the patch.
	// Returns domain.ErrNotFound if the project does not exist and
	// domain.ErrUnknownSection for unrecognised section names.
	Patch(ctx context.Context, id string, patch domain.SectionPatch) error

	// Delete removes a project.
	Delete(ctx context.Context, id string) error

	// List returns all projects.
	List(ctx context.Context) ([]domain.Project, error)
}
