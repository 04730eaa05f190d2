package domain

import (
	"sort"
	"strconv"
)

// FieldErrors is a validation error tree that mirrors the shape of the value
// it describes. Each invalid field carries one or more human-readable
// messages; container fields (slices, nested structs) carry child trees keyed
// by field name or element index.
//
// Building the tree is pure and allocation-light, so validators can run on
// every mutation without throttling concerns.
type FieldErrors struct {
	// Messages are the errors attached directly to this node.
	Messages []string

	// Fields holds nested error trees for child fields.
	Fields map[string]*FieldErrors
}

// NewFieldErrors creates an empty error tree.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{}
}

// Add appends a message to this node.
func (e *FieldErrors) Add(msg string) *FieldErrors {
	e.Messages = append(e.Messages, msg)
	return e
}

// Field returns the child tree for the named field, creating it if needed.
func (e *FieldErrors) Field(name string) *FieldErrors {
	if e.Fields == nil {
		e.Fields = make(map[string]*FieldErrors)
	}
	child, ok := e.Fields[name]
	if !ok {
		child = NewFieldErrors()
		e.Fields[name] = child
	}
	return child
}

// Index returns the child tree for a slice element, creating it if needed.
func (e *FieldErrors) Index(i int) *FieldErrors {
	return e.Field(strconv.Itoa(i))
}

// Attach mounts an existing subtree under the named field, replacing any
// tree already there. Used by container validators to nest element errors.
func (e *FieldErrors) Attach(name string, child *FieldErrors) {
	if child == nil {
		return
	}
	if e.Fields == nil {
		e.Fields = make(map[string]*FieldErrors)
	}
	e.Fields[name] = child
}

// AttachIndex mounts an existing subtree under a slice element index.
func (e *FieldErrors) AttachIndex(i int, child *FieldErrors) {
	e.Attach(strconv.Itoa(i), child)
}

// At walks the tree along the given path and returns the node there, or nil
// if no errors were recorded at that path. Safe to call on a nil tree.
func (e *FieldErrors) At(path ...string) *FieldErrors {
	if e == nil {
		return nil
	}
	node := e
	for _, p := range path {
		if node.Fields == nil {
			return nil
		}
		child, ok := node.Fields[p]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// IsZero reports whether the tree carries no messages anywhere.
func (e *FieldErrors) IsZero() bool {
	if e == nil {
		return true
	}
	if len(e.Messages) > 0 {
		return false
	}
	for _, child := range e.Fields {
		if !child.IsZero() {
			return false
		}
	}
	return true
}

// First returns the first message in the tree, walking depth-first with
// field names in sorted order so the result is deterministic. Returns the
// empty string for a clean tree.
func (e *FieldErrors) First() string {
	if e == nil {
		return ""
	}
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if msg := e.Fields[name].First(); msg != "" {
			return msg
		}
	}
	return ""
}

// ErrOrNil collapses a clean tree to nil so validators can be used in the
// idiomatic "if errs != nil" form.
func (e *FieldErrors) ErrOrNil() *FieldErrors {
	if e.IsZero() {
		return nil
	}
	return e
}

// Error implements the error interface, surfacing the first message.
func (e *FieldErrors) Error() string {
	if msg := e.First(); msg != "" {
		return msg
	}
	return "validation failed"
}

// Unwrap ties every FieldErrors to ErrInvalidInput for errors.Is checks.
func (e *FieldErrors) Unwrap() error {
	return ErrInvalidInput
}
