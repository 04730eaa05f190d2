package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project is the aggregate root for one wedding production. A project always
// carries all four sections; an empty section is a valid zero value, partial
// absence is not a representable state.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`

	// OwnerID identifies the account that owns the project.
	OwnerID string `json:"owner_id"`

	// CreatedAt is when the project was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the project was last updated.
	UpdatedAt time.Time `json:"updated_at"`

	// Essentials holds the core facts of the production.
	Essentials Essentials `json:"essentials"`

	// Timeline holds the run of show.
	Timeline Timeline `json:"timeline"`

	// People holds the wedding party and vendors.
	People People `json:"people"`

	// Photos holds requested shots.
	Photos Photos `json:"photos"`
}

// NewProject creates a project with a fresh identifier and all sections set
// to their documented defaults.
func NewProject(ownerID string) Project {
	now := time.Now().UTC()
	return Project{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
		Essentials: DefaultEssentials(),
		Timeline:   DefaultTimeline(),
		People:     DefaultPeople(),
		Photos:     DefaultPhotos(),
	}
}

// Clone returns a deep, detached copy of the project.
func (p *Project) Clone() Project {
	out := *p
	out.Essentials = p.Essentials.Clone()
	out.Timeline = p.Timeline.Clone()
	out.People = p.People.Clone()
	out.Photos = p.Photos.Clone()
	return out
}

// Section returns the named section value.
func (p *Project) Section(name SectionName) (Section, error) {
	switch name {
	case SectionEssentials:
		return p.Essentials, nil
	case SectionTimeline:
		return p.Timeline, nil
	case SectionPeople:
		return p.People, nil
	case SectionPhotos:
		return p.Photos, nil
	default:
		return nil, fmt.Errorf("section %q: %w", name, ErrUnknownSection)
	}
}

// SetSection replaces the section matching the value's name.
func (p *Project) SetSection(section Section) error {
	switch v := section.(type) {
	case Essentials:
		p.Essentials = v
	case Timeline:
		p.Timeline = v
	case People:
		p.People = v
	case Photos:
		p.Photos = v
	default:
		return fmt.Errorf("section %q: %w", section.SectionName(), ErrUnknownSection)
	}
	return nil
}

// RecordCount returns the number of records in a collection section, or 0
// for scalar sections.
func (p *Project) RecordCount(name SectionName) int {
	switch name {
	case SectionTimeline:
		return len(p.Timeline.Events)
	case SectionPeople:
		return len(p.People.Members)
	case SectionPhotos:
		return len(p.Photos.Shots)
	default:
		return 0
	}
}

// Validate checks every section, nesting each section's error tree under its
// name.
func (p *Project) Validate() *FieldErrors {
	errs := NewFieldErrors()
	for _, name := range AllSectionNames() {
		section, err := p.Section(name)
		if err != nil {
			continue
		}
		if sectionErrs := section.Validate(); sectionErrs != nil {
			errs.Attach(name.String(), sectionErrs)
		}
	}
	return errs.ErrOrNil()
}

// SectionPatch is a partial update naming the sections to write. The
// persistence gateway writes exactly these sections, leaving siblings
// untouched; that field scoping is what keeps concurrent edit sessions on
// different sections of the same project from clobbering each other.
type SectionPatch map[SectionName]Section

// Validate checks that every key is a known section name matching its value.
func (sp SectionPatch) Validate() error {
	if len(sp) == 0 {
		return fmt.Errorf("empty patch: %w", ErrInvalidInput)
	}
	for name, section := range sp {
		if !name.IsValid() {
			return fmt.Errorf("section %q: %w", name, ErrUnknownSection)
		}
		if section == nil {
			return fmt.Errorf("section %q has no value: %w", name, ErrInvalidInput)
		}
		if section.SectionName() != name {
			return fmt.Errorf("patch key %q does not match section %q: %w",
				name, section.SectionName(), ErrInvalidInput)
		}
	}
	return nil
}
