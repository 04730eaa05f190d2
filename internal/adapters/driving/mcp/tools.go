package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driving"
)

// ListProjectsInput is the input schema for the list_projects tool.
type ListProjectsInput struct{}

// ProjectSummary is one project in the list_projects output.
type ProjectSummary struct {
	ID         string `json:"id"`
	PartnerOne string `json:"partner_one,omitempty"`
	PartnerTwo string `json:"partner_two,omitempty"`
	Date       string `json:"date,omitempty"`
	Events     int    `json:"events"`
	People     int    `json:"people"`
	Shots      int    `json:"shots"`
}

// ListProjectsOutput is the output schema for the list_projects tool.
type ListProjectsOutput struct {
	Projects []ProjectSummary `json:"projects"`
	Count    int              `json:"count"`
}

// GetProjectInput is the input schema for the get_project tool.
type GetProjectInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project identifier"`
}

// GetProjectOutput is the output schema for the get_project tool.
type GetProjectOutput struct {
	Project domain.Project `json:"project"`
}

// ImportBatchInput is the input schema for the import_batch tool.
type ImportBatchInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project to import into"`
	Batch     string `json:"batch" jsonschema:"JSON object mapping section names (timeline, people, photos) to arrays of records"`
	Strategy  string `json:"strategy,omitempty" jsonschema:"merge strategy: merge (default) or replace"`
	Backup    bool   `json:"backup,omitempty" jsonschema:"snapshot the project before importing"`
}

// SectionCounts is one section's counts in the import_batch output.
type SectionCounts struct {
	Section  string `json:"section"`
	Existing int    `json:"existing"`
	Added    int    `json:"added"`
	Dropped  int    `json:"dropped"`
	Total    int    `json:"total"`
}

// ImportBatchOutput is the output schema for the import_batch tool.
type ImportBatchOutput struct {
	ProjectID string          `json:"project_id"`
	Strategy  string          `json:"strategy"`
	Sections  []SectionCounts `json:"sections"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List all wedding projects with record counts per section",
	}, s.handleListProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Get the full state of one wedding project",
	}, s.handleGetProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "import_batch",
		Description: "Import a JSON planner export into a project, merging or replacing each section",
	}, s.handleImportBatch)
}

// handleListProjects handles the list_projects tool invocation.
func (s *Server) handleListProjects(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListProjectsInput,
) (*mcp.CallToolResult, ListProjectsOutput, error) {
	projects, err := s.ports.Project.List(ctx)
	if err != nil {
		return nil, ListProjectsOutput{}, err
	}

	output := ListProjectsOutput{
		Projects: make([]ProjectSummary, len(projects)),
		Count:    len(projects),
	}

	for i := range projects {
		p := &projects[i]
		output.Projects[i] = ProjectSummary{
			ID:         p.ID,
			PartnerOne: p.Essentials.PartnerOne,
			PartnerTwo: p.Essentials.PartnerTwo,
			Date:       p.Essentials.Date,
			Events:     p.RecordCount(domain.SectionTimeline),
			People:     p.RecordCount(domain.SectionPeople),
			Shots:      p.RecordCount(domain.SectionPhotos),
		}
	}

	return nil, output, nil
}

// handleGetProject handles the get_project tool invocation.
func (s *Server) handleGetProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetProjectInput,
) (*mcp.CallToolResult, GetProjectOutput, error) {
	project, err := s.ports.Project.Get(ctx, input.ProjectID)
	if err != nil {
		return nil, GetProjectOutput{}, err
	}

	return nil, GetProjectOutput{Project: *project}, nil
}

// handleImportBatch handles the import_batch tool invocation.
func (s *Server) handleImportBatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ImportBatchInput,
) (*mcp.CallToolResult, ImportBatchOutput, error) {
	if s.ports.Importer == nil {
		return nil, ImportBatchOutput{}, errors.New("import service not available")
	}

	strategy := domain.StrategyMerge
	if input.Strategy != "" {
		parsed, err := domain.ParseMergeStrategy(input.Strategy)
		if err != nil {
			return nil, ImportBatchOutput{}, err
		}
		strategy = parsed
	}

	batch, err := domain.ParseImportBatch([]byte(input.Batch))
	if err != nil {
		return nil, ImportBatchOutput{}, err
	}

	report, err := s.ports.Importer.Import(ctx, input.ProjectID, batch, driving.ImportOptions{
		Strategy: strategy,
		Backup:   input.Backup,
	})
	if err != nil {
		return nil, ImportBatchOutput{}, err
	}

	output := ImportBatchOutput{
		ProjectID: report.ProjectID,
		Strategy:  report.Strategy.String(),
		Sections:  make([]SectionCounts, len(report.Sections)),
	}
	for i, section := range report.Sections {
		output.Sections[i] = SectionCounts{
			Section:  section.Name.String(),
			Existing: section.Existing,
			Added:    section.Added,
			Dropped:  section.Dropped,
			Total:    section.Total,
		}
	}

	return nil, output, nil
}
