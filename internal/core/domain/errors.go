package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested project or section does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSection indicates a section name the project does not carry.
	// Persistence gateways must reject, not silently drop, unknown sections.
	ErrUnknownSection = errors.New("unknown section")

	// ErrEmptyBatch indicates an import batch contained zero valid records
	// after per-record validation. Fatal to that import call only.
	ErrEmptyBatch = errors.New("import batch contains no valid records")

	// ErrPersistence indicates the persistence gateway rejected a write.
	// The in-memory working state is preserved so the caller can retry.
	ErrPersistence = errors.New("persistence failed")

	// ErrSessionClosed indicates an operation on a form session that has no
	// open edit in progress.
	ErrSessionClosed = errors.New("edit session is closed")

	// ErrSessionOpen indicates Open was called on a session that already has
	// an edit in progress. A controller mediates one session at a time.
	ErrSessionOpen = errors.New("edit session already open")
)
