package mcp

import (
	"github.com/plume-labs/plume-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Project manages project lifecycles.
	Project driving.ProjectService

	// Importer runs batch imports.
	Importer driving.Importer
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Project == nil {
		return ErrMissingProjectService
	}
	// Importer is optional; the import tool reports it as unavailable.
	return nil
}
