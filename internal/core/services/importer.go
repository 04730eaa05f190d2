package services

import (
	"context"
	"fmt"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
	"github.com/plume-labs/plume-cli/internal/core/ports/driving"
	"github.com/plume-labs/plume-cli/internal/logger"
)

// Ensure ImportOrchestrator implements the interface.
var _ driving.Importer = (*ImportOrchestrator)(nil)

// ImportOrchestrator drives a multi-section import: validate the incoming
// batch, snapshot the project, merge per affected section, persist all
// affected sections together and report before/after counts.
type ImportOrchestrator struct {
	store       driven.ProjectStore
	snapshotter driven.Snapshotter
	notifier    driven.Notifier
}

// NewImportOrchestrator creates a new import orchestrator.
// The snapshotter is only required when callers request backups.
func NewImportOrchestrator(store driven.ProjectStore, snapshotter driven.Snapshotter, notifier driven.Notifier) *ImportOrchestrator {
	return &ImportOrchestrator{
		store:       store,
		snapshotter: snapshotter,
		notifier:    notifier,
	}
}

// Import runs one import operation. Steps are sequential; the single Patch
// call at the end is the only mutating step, so a failure anywhere leaves
// the project unchanged.
func (o *ImportOrchestrator) Import(ctx context.Context, projectID string, batch *domain.ImportBatch, opts driving.ImportOptions) (*driving.ImportReport, error) {
	if !opts.Strategy.IsValid() {
		return nil, o.fail(fmt.Errorf("import: merge strategy %q: %w", opts.Strategy, domain.ErrInvalidInput))
	}

	for _, name := range batch.Unknown {
		if domain.SectionName(name).IsValid() {
			logger.Warn("Import: section %q is not importable, ignoring", name)
		} else {
			logger.Warn("Import: unknown section %q, ignoring", name)
		}
	}

	// 1. Per-record validation. Invalid records are dropped with a logged
	// reason; they never fail the batch.
	events, droppedEvents := validRecords(domain.SectionTimeline, batch.Timeline)
	people, droppedPeople := validRecords(domain.SectionPeople, batch.People)
	shots, droppedShots := validRecords(domain.SectionPhotos, batch.Photos)

	// 2. A batch with zero valid records fails as a whole.
	if len(events) == 0 && len(people) == 0 && len(shots) == 0 {
		return nil, o.fail(fmt.Errorf("import into %s: %w", projectID, domain.ErrEmptyBatch))
	}

	// 3. Snapshot before mutating anything. A snapshot failure aborts.
	if opts.Backup {
		if o.snapshotter == nil {
			return nil, o.fail(fmt.Errorf("import into %s: backup requested but no snapshotter configured", projectID))
		}
		if _, err := o.snapshotter.Snapshot(ctx, projectID); err != nil {
			return nil, o.fail(fmt.Errorf("import into %s: snapshot: %w", projectID, err))
		}
		logger.Info("Snapshot taken for project %s", projectID)
	}

	project, err := o.store.Get(ctx, projectID)
	if err != nil {
		return nil, o.fail(fmt.Errorf("import into %s: %w", projectID, err))
	}

	// 4. Merge each affected section under the one uniform strategy.
	report := &driving.ImportReport{
		ProjectID: projectID,
		Strategy:  opts.Strategy,
	}
	patch := domain.SectionPatch{}

	if len(events) > 0 {
		result, err := domain.Merge(project.Timeline.Events, events, opts.Strategy)
		if err != nil {
			return nil, o.fail(fmt.Errorf("import into %s: merge timeline: %w", projectID, err))
		}
		patch[domain.SectionTimeline] = domain.Timeline{Events: result.Records}
		report.Sections = append(report.Sections, sectionReport(domain.SectionTimeline, result.Kept, result.Added, droppedEvents, result.Total()))
	}
	if len(people) > 0 {
		result, err := domain.Merge(project.People.Members, people, opts.Strategy)
		if err != nil {
			return nil, o.fail(fmt.Errorf("import into %s: merge people: %w", projectID, err))
		}
		patch[domain.SectionPeople] = domain.People{Members: result.Records}
		report.Sections = append(report.Sections, sectionReport(domain.SectionPeople, result.Kept, result.Added, droppedPeople, result.Total()))
	}
	if len(shots) > 0 {
		result, err := domain.Merge(project.Photos.Shots, shots, opts.Strategy)
		if err != nil {
			return nil, o.fail(fmt.Errorf("import into %s: merge photos: %w", projectID, err))
		}
		patch[domain.SectionPhotos] = domain.Photos{Shots: result.Records}
		report.Sections = append(report.Sections, sectionReport(domain.SectionPhotos, result.Kept, result.Added, droppedShots, result.Total()))
	}

	// 5. One gateway call covering every affected section. The project never
	// passes through a state where only some sections reflect the import.
	if err := o.store.Patch(ctx, projectID, patch); err != nil {
		return nil, o.fail(fmt.Errorf("import into %s: persist: %w", projectID, err))
	}

	logger.Info("Import complete: %d added, %d dropped across %d sections",
		report.TotalAdded(), report.TotalDropped(), len(report.Sections))
	o.notifier.Notify(domain.SuccessNotification(fmt.Sprintf(
		"Imported %d records into %d sections", report.TotalAdded(), len(report.Sections))))
	return report, nil
}

// fail emits exactly one error notification for a terminal failure and
// passes the error through.
func (o *ImportOrchestrator) fail(err error) error {
	o.notifier.Notify(domain.ErrorNotification(err.Error()))
	return err
}

// validatedRecord is the constraint for records that can be screened during
// import.
type validatedRecord[R any] interface {
	domain.Record[R]
	Validate() *domain.FieldErrors
}

// validRecords screens one batch group, dropping invalid records with a
// logged reason.
func validRecords[R validatedRecord[R]](name domain.SectionName, records []R) (valid []R, dropped int) {
	for i, record := range records {
		if errs := record.Validate(); errs != nil {
			logger.Warn("Import: dropping invalid %s record %d: %s", name, i, errs.First())
			dropped++
			continue
		}
		valid = append(valid, record)
	}
	return valid, dropped
}

func sectionReport(name domain.SectionName, existing, added, dropped, total int) driving.SectionImportReport {
	return driving.SectionImportReport{
		Name:     name,
		Existing: existing,
		Added:    added,
		Dropped:  dropped,
		Total:    total,
	}
}
