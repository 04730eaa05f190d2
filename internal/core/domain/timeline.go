package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeLayout is the wire format for event times (24h clock).
const timeLayout = "15:04"

// Event is one run-of-show entry in the timeline section.
type Event struct {
	// ID is the stable identifier, assigned at creation and never reassigned.
	ID string `json:"id"`

	// Time is the scheduled time in HH:MM form.
	Time string `json:"time"`

	// Description says what happens.
	Description string `json:"desc"`

	// Location is where the event takes place.
	Location string `json:"location,omitempty"`

	// Owner is who runs this part of the show.
	Owner string `json:"owner,omitempty"`
}

// NewEvent creates an event with a fresh identifier.
func NewEvent(eventTime, description string) Event {
	return Event{
		ID:          uuid.NewString(),
		Time:        eventTime,
		Description: description,
	}
}

// RecordID returns the stable identifier.
func (e Event) RecordID() string {
	return e.ID
}

// ContentEquals reports whether two events are equal in every field other
// than the identifier. Imported records generate fresh identifiers, so the
// identifier is intentionally excluded.
func (e Event) ContentEquals(other Event) bool {
	e.ID = ""
	other.ID = ""
	return e == other
}

// Clone returns an independent copy.
func (e Event) Clone() Event {
	return e
}

// ApplyDefaults fills unset optional fields, assigning a fresh identifier
// when none was supplied.
func (e *Event) ApplyDefaults() {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
}

// Validate checks the event against its schema.
func (e Event) Validate() *FieldErrors {
	errs := NewFieldErrors()
	if strings.TrimSpace(e.Time) == "" {
		errs.Field("time").Add("time is required")
	} else if _, err := time.Parse(timeLayout, e.Time); err != nil {
		errs.Field("time").Add(fmt.Sprintf("time must be in HH:MM form, got %q", e.Time))
	}
	if strings.TrimSpace(e.Description) == "" {
		errs.Field("desc").Add("desc is required")
	}
	return errs.ErrOrNil()
}

// Timeline is the collection section holding the ordered run of show.
type Timeline struct {
	// Events is the ordered collection of run-of-show entries.
	Events []Event `json:"events"`
}

// DefaultTimeline returns the documented default value: an empty event list.
func DefaultTimeline() Timeline {
	return Timeline{Events: []Event{}}
}

// SectionName returns the fixed name this section is stored under.
func (t Timeline) SectionName() SectionName {
	return SectionTimeline
}

// Clone returns a deep copy so working copies never alias the original.
func (t Timeline) Clone() Timeline {
	out := Timeline{Events: make([]Event, len(t.Events))}
	copy(out.Events, t.Events)
	return out
}

// Validate checks every event, nesting per-index error trees under "events".
func (t Timeline) Validate() *FieldErrors {
	errs := NewFieldErrors()
	for i, event := range t.Events {
		if eventErrs := event.Validate(); eventErrs != nil {
			errs.Field("events").AttachIndex(i, eventErrs)
		}
	}
	return errs.ErrOrNil()
}
