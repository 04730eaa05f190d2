package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for the wedding date.
const dateLayout = "2006-01-02"

// Essentials is the scalar section holding the core facts of the production.
// All fields are optional so a freshly created project validates cleanly;
// format checks apply only to fields that are set.
type Essentials struct {
	// PartnerOne is the first partner's name.
	PartnerOne string `json:"partner_one,omitempty"`

	// PartnerTwo is the second partner's name.
	PartnerTwo string `json:"partner_two,omitempty"`

	// Date is the wedding date in YYYY-MM-DD form.
	Date string `json:"date,omitempty"`

	// Venue is the venue name or address.
	Venue string `json:"venue,omitempty"`

	// ContactEmail is the primary planning contact.
	ContactEmail string `json:"contact_email,omitempty"`

	// GuestCount is the expected number of guests.
	GuestCount int `json:"guest_count,omitempty"`
}

// DefaultEssentials returns the documented default value for the section.
func DefaultEssentials() Essentials {
	return Essentials{}
}

// SectionName returns the fixed name this section is stored under.
func (e Essentials) SectionName() SectionName {
	return SectionEssentials
}

// Clone returns an independent copy.
func (e Essentials) Clone() Essentials {
	return e
}

// Validate checks the section against its schema.
func (e Essentials) Validate() *FieldErrors {
	errs := NewFieldErrors()
	if e.Date != "" {
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			errs.Field("date").Add(fmt.Sprintf("date must be in YYYY-MM-DD form, got %q", e.Date))
		}
	}
	if e.ContactEmail != "" && !strings.Contains(e.ContactEmail, "@") {
		errs.Field("contact_email").Add("contact_email must be an email address")
	}
	if e.GuestCount < 0 {
		errs.Field("guest_count").Add("guest_count must not be negative")
	}
	return errs.ErrOrNil()
}
