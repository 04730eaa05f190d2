package services

import (
	"context"
	"fmt"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
	"github.com/plume-labs/plume-cli/internal/core/ports/driving"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages project lifecycles.
type ProjectService struct {
	store driven.ProjectStore
}

// NewProjectService creates a new project service.
func NewProjectService(store driven.ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// Create creates a new project with all sections set to their defaults.
func (s *ProjectService) Create(ctx context.Context, ownerID string) (*domain.Project, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("create project: owner is required: %w", domain.ErrInvalidInput)
	}
	project := domain.NewProject(ownerID)
	if err := s.store.Save(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return project, nil
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}
