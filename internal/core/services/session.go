package services

import (
	"context"
	"fmt"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
	"github.com/plume-labs/plume-cli/internal/logger"
)

// SessionState tracks where a form session is in its lifecycle.
type SessionState int

// Session lifecycle states.
const (
	// StateClosed means no edit is in progress. Initial and terminal.
	StateClosed SessionState = iota

	// StateEditing means a working copy is open for mutation.
	StateEditing

	// StateSubmitting means a submit is in flight. A second Submit while in
	// this state is a no-op.
	StateSubmitting
)

// String returns the string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// SessionConfig wires a FormSession to one concrete section type.
type SessionConfig[S domain.Section] struct {
	// Default returns the section's documented default value, used in
	// create mode.
	Default func() S

	// Read extracts the section from a loaded project.
	Read func(project *domain.Project) S

	// Clone deep-copies a section value. The working copy must never alias
	// the loaded project.
	Clone func(section S) S
}

// FormSession mediates one section's edit lifecycle for exactly one open
// modal at a time. It owns the working copy, synchronous revalidation on
// every mutation, transactional submission through the persistence gateway
// and the user-facing success/error notifications.
//
// A session is single-threaded by contract: callers drive it from one event
// loop, so mutations apply strictly in call order.
type FormSession[S domain.Section] struct {
	store    driven.ProjectStore
	notifier driven.Notifier
	cfg      SessionConfig[S]

	state     SessionState
	projectID string
	ownerID   string
	working   S
	errs      *domain.FieldErrors
}

// NewFormSession creates a session controller for one section type.
func NewFormSession[S domain.Section](store driven.ProjectStore, notifier driven.Notifier, cfg SessionConfig[S]) *FormSession[S] {
	return &FormSession[S]{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		state:    StateClosed,
	}
}

// SectionName returns the name of the section this session edits.
func (s *FormSession[S]) SectionName() domain.SectionName {
	var zero S
	return zero.SectionName()
}

// State returns the current lifecycle state.
func (s *FormSession[S]) State() SessionState {
	return s.state
}

// ProjectID returns the project under edit, or the empty string before a
// create-mode session first submits.
func (s *FormSession[S]) ProjectID() string {
	return s.projectID
}

// Open starts an edit-mode session on an existing project's section. The
// working copy is a deep copy of the stored value; cancelling the session
// can never mutate the project.
func (s *FormSession[S]) Open(ctx context.Context, projectID string) error {
	if s.state != StateClosed {
		return fmt.Errorf("open %s session: %w", s.SectionName(), domain.ErrSessionOpen)
	}
	project, err := s.store.Get(ctx, projectID)
	if err != nil {
		return fmt.Errorf("open %s session: %w", s.SectionName(), err)
	}
	s.projectID = projectID
	s.ownerID = project.OwnerID
	s.working = s.cfg.Clone(s.cfg.Read(project))
	s.errs = s.working.Validate()
	s.state = StateEditing
	logger.Debug("Opened %s session for project %s", s.SectionName(), projectID)
	return nil
}

// OpenNew starts a create-mode session. The working copy is initialised from
// the section's documented default; the project itself is created on the
// first successful submit.
func (s *FormSession[S]) OpenNew(ownerID string) error {
	if s.state != StateClosed {
		return fmt.Errorf("open %s session: %w", s.SectionName(), domain.ErrSessionOpen)
	}
	s.projectID = ""
	s.ownerID = ownerID
	s.working = s.cfg.Default()
	s.errs = s.working.Validate()
	s.state = StateEditing
	logger.Debug("Opened %s session in create mode", s.SectionName())
	return nil
}

// Mutate applies a change to the working copy and revalidates synchronously.
// Validation is pure and I/O-free, so callers may mutate on every keystroke.
func (s *FormSession[S]) Mutate(change func(section *S)) error {
	if s.state != StateEditing {
		return fmt.Errorf("mutate %s session: %w", s.SectionName(), domain.ErrSessionClosed)
	}
	change(&s.working)
	s.errs = s.working.Validate()
	return nil
}

// Working returns a copy of the working copy.
func (s *FormSession[S]) Working() S {
	return s.cfg.Clone(s.working)
}

// Errors returns the current validation error tree, nil when the working
// copy is valid.
func (s *FormSession[S]) Errors() *domain.FieldErrors {
	return s.errs
}

// Submit validates the working copy and, if valid, persists it as a patch
// naming only this session's section. On gateway failure the session stays
// in Editing with the working copy preserved so no user input is lost; the
// failure is not retried automatically.
func (s *FormSession[S]) Submit(ctx context.Context) error {
	switch s.state {
	case StateSubmitting:
		// Not reentrant.
		return nil
	case StateClosed:
		return fmt.Errorf("submit %s session: %w", s.SectionName(), domain.ErrSessionClosed)
	}

	if errs := s.working.Validate(); errs != nil {
		s.errs = errs
		s.notifier.Notify(domain.ErrorNotification(errs.First()))
		return fmt.Errorf("submit %s session: %w", s.SectionName(), errs)
	}

	s.state = StateSubmitting

	if s.projectID == "" {
		project := domain.NewProject(s.ownerID)
		if err := s.store.Save(ctx, project); err != nil {
			s.state = StateEditing
			s.notifier.Notify(domain.ErrorNotification(fmt.Sprintf("Could not create project: %v", err)))
			return fmt.Errorf("submit %s session: %w", s.SectionName(), err)
		}
		s.projectID = project.ID
	}

	patch := domain.SectionPatch{s.SectionName(): s.working}
	if err := s.store.Patch(ctx, s.projectID, patch); err != nil {
		s.state = StateEditing
		s.notifier.Notify(domain.ErrorNotification(fmt.Sprintf("Could not save %s: %v", s.SectionName(), err)))
		return fmt.Errorf("submit %s session: %w", s.SectionName(), err)
	}

	logger.Debug("Submitted %s section for project %s", s.SectionName(), s.projectID)
	s.notifier.Notify(domain.SuccessNotification(fmt.Sprintf("Saved %s", s.SectionName())))
	s.close()
	return nil
}

// Cancel discards the working copy and closes the session. It is synchronous
// and always succeeds; it is only reachable while editing, never while a
// submit is in flight.
func (s *FormSession[S]) Cancel() {
	if s.state != StateEditing {
		return
	}
	logger.Debug("Cancelled %s session", s.SectionName())
	s.close()
}

func (s *FormSession[S]) close() {
	var zero S
	s.state = StateClosed
	s.working = zero
	s.errs = nil
	s.ownerID = ""
}
