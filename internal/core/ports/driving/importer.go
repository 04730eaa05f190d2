package driving

import (
	"context"
	"fmt"

	"github.com/plume-labs/plume-cli/internal/core/domain"
)

// Importer coordinates a multi-section import as a single logical operation.
type Importer interface {
	// Import validates the batch, optionally snapshots the project, merges
	// each affected section under one uniform strategy and persists all
	// affected sections in a single gateway call.
	Import(ctx context.Context, projectID string, batch *domain.ImportBatch, opts ImportOptions) (*ImportReport, error)
}

// ImportOptions configures one import operation.
type ImportOptions struct {
	// Strategy is applied uniformly to every section in the batch.
	Strategy domain.MergeStrategy

	// Backup snapshots the full project before mutating anything.
	Backup bool
}

// SectionImportReport holds before/after record counts for one section.
type SectionImportReport struct {
	// Name is the section the counts describe.
	Name domain.SectionName

	// Existing is how many records in the result came from the prior state.
	Existing int

	// Added is how many incoming records were newly added.
	Added int

	// Dropped is how many incoming records failed validation and were
	// excluded from the merge.
	Dropped int

	// Total is the record count after the import.
	Total int
}

// Summary renders the counts in the canonical report form.
func (r SectionImportReport) Summary() string {
	return fmt.Sprintf("%d existing, %d added, %d total", r.Existing, r.Added, r.Total)
}

// ImportReport is the outcome of one import operation.
type ImportReport struct {
	// ProjectID is the project that was imported into.
	ProjectID string

	// Strategy is the strategy that was applied.
	Strategy domain.MergeStrategy

	// Sections holds per-section counts, in canonical section order.
	Sections []SectionImportReport
}

// TotalAdded returns the number of records added across all sections.
func (r *ImportReport) TotalAdded() int {
	var total int
	for _, s := range r.Sections {
		total += s.Added
	}
	return total
}

// TotalDropped returns the number of invalid records dropped across all
// sections.
func (r *ImportReport) TotalDropped() int {
	var total int
	for _, s := range r.Sections {
		total += s.Dropped
	}
	return total
}

// TotalRecords returns the grand total of records after the import.
func (r *ImportReport) TotalRecords() int {
	var total int
	for _, s := range r.Sections {
		total += s.Total
	}
	return total
}
