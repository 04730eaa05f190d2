package domain

// SectionName identifies one of the fixed sections of a project.
type SectionName string

// The four sections every project carries.
const (
	// SectionEssentials holds the core facts of the production.
	SectionEssentials SectionName = "essentials"

	// SectionTimeline holds the ordered run-of-show events.
	SectionTimeline SectionName = "timeline"

	// SectionPeople holds the people involved in the production.
	SectionPeople SectionName = "people"

	// SectionPhotos holds the requested photo shots.
	SectionPhotos SectionName = "photos"
)

// IsValid returns true if the section name is recognised.
func (n SectionName) IsValid() bool {
	switch n {
	case SectionEssentials, SectionTimeline, SectionPeople, SectionPhotos:
		return true
	default:
		return false
	}
}

// Collection returns true if the section holds a collection of records
// rather than a single scalar document. Only collection sections are
// importable.
func (n SectionName) Collection() bool {
	switch n {
	case SectionTimeline, SectionPeople, SectionPhotos:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (n SectionName) String() string {
	return string(n)
}

// Description returns a human-readable description of the section.
func (n SectionName) Description() string {
	switch n {
	case SectionEssentials:
		return "Essential info (couple, date, venue)"
	case SectionTimeline:
		return "Timeline (run of show)"
	case SectionPeople:
		return "People (wedding party and vendors)"
	case SectionPhotos:
		return "Photos (requested shots)"
	default:
		return "Unknown"
	}
}

// AllSectionNames returns all section names in canonical order.
func AllSectionNames() []SectionName {
	return []SectionName{
		SectionEssentials,
		SectionTimeline,
		SectionPeople,
		SectionPhotos,
	}
}

// CollectionSectionNames returns the record-valued sections in canonical order.
func CollectionSectionNames() []SectionName {
	return []SectionName{
		SectionTimeline,
		SectionPeople,
		SectionPhotos,
	}
}

// Section is one independently validated sub-document of a project.
// Implementations are plain value types; Validate must be pure and free of
// I/O so it can run on every mutation.
type Section interface {
	// SectionName returns the fixed name this section is stored under.
	SectionName() SectionName

	// Validate checks the section against its schema.
	// Returns nil when the section is well-formed.
	Validate() *FieldErrors
}
