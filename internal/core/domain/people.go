package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NotifyPreference defines how a person wants to be reached about schedule
// changes.
type NotifyPreference string

// Available notification preferences.
const (
	// NotifyNone means no notifications. This is the documented default.
	NotifyNone NotifyPreference = "none"

	// NotifyEmail delivers notifications by email.
	NotifyEmail NotifyPreference = "email"

	// NotifySMS delivers notifications by text message.
	NotifySMS NotifyPreference = "sms"
)

// IsValid returns true if the preference is recognised.
func (p NotifyPreference) IsValid() bool {
	switch p {
	case NotifyNone, NotifyEmail, NotifySMS:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p NotifyPreference) String() string {
	return string(p)
}

// Person is one member of the wedding party or vendor team.
type Person struct {
	// ID is the stable identifier, assigned at creation and never reassigned.
	ID string `json:"id"`

	// Name is the person's name.
	Name string `json:"name"`

	// Role is what the person does (e.g. "officiant", "florist").
	Role string `json:"role"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Notify is the notification preference. Defaults to none when unset.
	Notify NotifyPreference `json:"notify,omitempty"`
}

// NewPerson creates a person with a fresh identifier and defaults applied.
func NewPerson(name, role string) Person {
	p := Person{
		ID:   uuid.NewString(),
		Name: name,
		Role: role,
	}
	p.ApplyDefaults()
	return p
}

// RecordID returns the stable identifier.
func (p Person) RecordID() string {
	return p.ID
}

// ContentEquals reports whether two people are equal in every field other
// than the identifier.
func (p Person) ContentEquals(other Person) bool {
	p.ID = ""
	other.ID = ""
	return p == other
}

// Clone returns an independent copy.
func (p Person) Clone() Person {
	return p
}

// ApplyDefaults fills unset optional fields before validation.
func (p *Person) ApplyDefaults() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Notify == "" {
		p.Notify = NotifyNone
	}
}

// Validate checks the person against its schema.
func (p Person) Validate() *FieldErrors {
	errs := NewFieldErrors()
	if strings.TrimSpace(p.Name) == "" {
		errs.Field("name").Add("name is required")
	}
	if strings.TrimSpace(p.Role) == "" {
		errs.Field("role").Add("role is required")
	}
	if p.Notify != "" && !p.Notify.IsValid() {
		errs.Field("notify").Add("notify must be one of none, email, sms")
	}
	return errs.ErrOrNil()
}

// People is the collection section holding everyone involved in the
// production.
type People struct {
	// Members is the collection of people.
	Members []Person `json:"members"`
}

// DefaultPeople returns the documented default value: an empty member list.
func DefaultPeople() People {
	return People{Members: []Person{}}
}

// SectionName returns the fixed name this section is stored under.
func (p People) SectionName() SectionName {
	return SectionPeople
}

// Clone returns a deep copy so working copies never alias the original.
func (p People) Clone() People {
	out := People{Members: make([]Person, len(p.Members))}
	copy(out.Members, p.Members)
	return out
}

// Validate checks every member, nesting per-index error trees under
// "members".
func (p People) Validate() *FieldErrors {
	errs := NewFieldErrors()
	for i, member := range p.Members {
		if memberErrs := member.Validate(); memberErrs != nil {
			errs.Field("members").AttachIndex(i, memberErrs)
		}
	}
	return errs.ErrOrNil()
}
