// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// SectionSaved signals the active form session submitted successfully.
type SectionSaved struct {
	ProjectID string
}

// SubmitFailed signals a submit that did not go through. The session keeps
// its working copy, so the form stays open for another attempt.
type SubmitFailed struct {
	Err error
}

// SessionCancelled signals the active form session was cancelled.
type SessionCancelled struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
