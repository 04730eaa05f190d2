package domain

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ShotPriority defines how important a requested shot is.
type ShotPriority string

// Available shot priorities.
const (
	// PriorityLow marks a nice-to-have shot.
	PriorityLow ShotPriority = "low"

	// PriorityNormal is the documented default.
	PriorityNormal ShotPriority = "normal"

	// PriorityHigh marks a must-have shot.
	PriorityHigh ShotPriority = "high"
)

// IsValid returns true if the priority is recognised.
func (p ShotPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p ShotPriority) String() string {
	return string(p)
}

// ShotRequest is one requested photo in the photos section.
type ShotRequest struct {
	// ID is the stable identifier, assigned at creation and never reassigned.
	ID string `json:"id"`

	// Title names the shot (e.g. "First look").
	Title string `json:"title"`

	// Subjects lists who should be in the frame.
	Subjects []string `json:"subjects,omitempty"`

	// Moment is when during the day the shot happens.
	Moment string `json:"moment,omitempty"`

	// Priority is the shot priority. Defaults to normal when unset.
	Priority ShotPriority `json:"priority,omitempty"`
}

// NewShotRequest creates a shot request with a fresh identifier and defaults
// applied.
func NewShotRequest(title string) ShotRequest {
	s := ShotRequest{
		ID:    uuid.NewString(),
		Title: title,
	}
	s.ApplyDefaults()
	return s
}

// RecordID returns the stable identifier.
func (s ShotRequest) RecordID() string {
	return s.ID
}

// ContentEquals reports whether two shot requests are equal in every field
// other than the identifier.
func (s ShotRequest) ContentEquals(other ShotRequest) bool {
	if s.Title != other.Title || s.Moment != other.Moment || s.Priority != other.Priority {
		return false
	}
	return slices.Equal(s.Subjects, other.Subjects)
}

// Clone returns a deep copy.
func (s ShotRequest) Clone() ShotRequest {
	out := s
	out.Subjects = slices.Clone(s.Subjects)
	return out
}

// ApplyDefaults fills unset optional fields before validation.
func (s *ShotRequest) ApplyDefaults() {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Priority == "" {
		s.Priority = PriorityNormal
	}
}

// Validate checks the shot request against its schema.
func (s ShotRequest) Validate() *FieldErrors {
	errs := NewFieldErrors()
	if strings.TrimSpace(s.Title) == "" {
		errs.Field("title").Add("title is required")
	}
	if s.Priority != "" && !s.Priority.IsValid() {
		errs.Field("priority").Add("priority must be one of low, normal, high")
	}
	return errs.ErrOrNil()
}

// Photos is the collection section holding requested shots.
type Photos struct {
	// Shots is the collection of requested shots.
	Shots []ShotRequest `json:"shots"`
}

// DefaultPhotos returns the documented default value: an empty shot list.
func DefaultPhotos() Photos {
	return Photos{Shots: []ShotRequest{}}
}

// SectionName returns the fixed name this section is stored under.
func (p Photos) SectionName() SectionName {
	return SectionPhotos
}

// Clone returns a deep copy so working copies never alias the original.
func (p Photos) Clone() Photos {
	out := Photos{Shots: make([]ShotRequest, len(p.Shots))}
	for i, shot := range p.Shots {
		out.Shots[i] = shot.Clone()
	}
	return out
}

// Validate checks every shot, nesting per-index error trees under "shots".
func (p Photos) Validate() *FieldErrors {
	errs := NewFieldErrors()
	for i, shot := range p.Shots {
		if shotErrs := shot.Validate(); shotErrs != nil {
			errs.Field("shots").AttachIndex(i, shotErrs)
		}
	}
	return errs.ErrOrNil()
}
