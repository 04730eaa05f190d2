// Package memory provides in-memory implementations of the driven storage
// ports, used for tests and as reference implementations of the gateway
// contract.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
)

// Ensure ProjectStore implements the interface.
var _ driven.ProjectStore = (*ProjectStore)(nil)

// ProjectStore is an in-memory implementation of driven.ProjectStore.
// Values are deep-copied on the way in and out so callers can never alias
// stored state.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[string]domain.Project
}

// NewProjectStore creates a new in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects: make(map[string]domain.Project),
	}
}

// Save stores or updates a project.
func (s *ProjectStore) Save(_ context.Context, project domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = project.Clone()
	return nil
}

// Get retrieves a project by ID.
func (s *ProjectStore) Get(_ context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := project.Clone()
	return &clone, nil
}

// Patch writes only the sections named in the patch.
func (s *ProjectStore) Patch(_ context.Context, id string, patch domain.SectionPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	project, ok := s.projects[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, section := range patch {
		if err := project.SetSection(section); err != nil {
			return err
		}
	}
	project.UpdatedAt = time.Now().UTC()
	s.projects[id] = project.Clone()
	return nil
}

// Delete removes a project.
func (s *ProjectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
	return nil
}

// List returns all projects.
func (s *ProjectStore) List(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Project, 0, len(s.projects))
	for _, project := range s.projects {
		result = append(result, project.Clone())
	}
	return result, nil
}
