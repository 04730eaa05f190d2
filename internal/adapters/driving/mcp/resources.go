package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for plume resources.
const uriScheme = "plume://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing projects.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "projects",
		Name:        "projects",
		Description: "List of all wedding projects",
		MIMEType:    "application/json",
	}, s.handleProjectsResource)

	// Template for one section of a project.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "projects/{projectId}/{section}",
		Name:        "project-section",
		Description: "One section of a project (essentials, timeline, people or photos)",
		MIMEType:    "application/json",
	}, s.handleSectionResource)
}

// handleProjectsResource returns a list of all projects.
func (s *Server) handleProjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	projects, err := s.ports.Project.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	summaries := make([]ProjectSummary, len(projects))
	for i := range projects {
		p := &projects[i]
		summaries[i] = ProjectSummary{
			ID:         p.ID,
			PartnerOne: p.Essentials.PartnerOne,
			PartnerTwo: p.Essentials.PartnerTwo,
			Date:       p.Essentials.Date,
			Events:     p.RecordCount(domain.SectionTimeline),
			People:     p.RecordCount(domain.SectionPeople),
			Shots:      p.RecordCount(domain.SectionPhotos),
		}
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return nil, fmt.Errorf("encoding projects: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionResource returns one section of a project as JSON.
func (s *Server) handleSectionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// URI form: plume://projects/{projectId}/{section}
	rest := strings.TrimPrefix(req.Params.URI, uriScheme+"projects/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid resource URI %q", req.Params.URI)
	}
	projectID, sectionName := parts[0], domain.SectionName(parts[1])

	if !sectionName.IsValid() {
		return nil, fmt.Errorf("unknown section %q", parts[1])
	}

	project, err := s.ports.Project.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}

	section, err := project.Section(sectionName)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("encoding section: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
