package services

import (
	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
)

// Concrete, statically-typed session instantiations, one per section kind.
// Surfaces take exactly the session they need as a constructed argument.

// NewEssentialsSession creates a session controller for the essentials
// section.
func NewEssentialsSession(store driven.ProjectStore, notifier driven.Notifier) *FormSession[domain.Essentials] {
	return NewFormSession(store, notifier, SessionConfig[domain.Essentials]{
		Default: domain.DefaultEssentials,
		Read:    func(p *domain.Project) domain.Essentials { return p.Essentials },
		Clone:   domain.Essentials.Clone,
	})
}

// NewTimelineSession creates a session controller for the timeline section.
func NewTimelineSession(store driven.ProjectStore, notifier driven.Notifier) *FormSession[domain.Timeline] {
	return NewFormSession(store, notifier, SessionConfig[domain.Timeline]{
		Default: domain.DefaultTimeline,
		Read:    func(p *domain.Project) domain.Timeline { return p.Timeline },
		Clone:   domain.Timeline.Clone,
	})
}

// NewPeopleSession creates a session controller for the people section.
func NewPeopleSession(store driven.ProjectStore, notifier driven.Notifier) *FormSession[domain.People] {
	return NewFormSession(store, notifier, SessionConfig[domain.People]{
		Default: domain.DefaultPeople,
		Read:    func(p *domain.Project) domain.People { return p.People },
		Clone:   domain.People.Clone,
	})
}

// NewPhotosSession creates a session controller for the photos section.
func NewPhotosSession(store driven.ProjectStore, notifier driven.Notifier) *FormSession[domain.Photos] {
	return NewFormSession(store, notifier, SessionConfig[domain.Photos]{
		Default: domain.DefaultPhotos,
		Read:    func(p *domain.Project) domain.Photos { return p.Photos },
		Clone:   domain.Photos.Clone,
	})
}
