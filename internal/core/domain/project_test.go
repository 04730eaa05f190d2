package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject_DefaultsValidate(t *testing.T) {
	p := NewProject("owner-1")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "owner-1", p.OwnerID)
	assert.Empty(t, p.Timeline.Events)
	assert.Empty(t, p.People.Members)
	assert.Empty(t, p.Photos.Shots)
	assert.Nil(t, p.Validate())
}

func TestProjectClone_IsDetached(t *testing.T) {
	p := NewProject("owner-1")
	p.Timeline.Events = []Event{{ID: "a", Time: "10:00", Description: "ceremony"}}

	clone := p.Clone()
	clone.Timeline.Events[0].Description = "changed"
	clone.Essentials.Venue = "elsewhere"

	assert.Equal(t, "ceremony", p.Timeline.Events[0].Description)
	assert.Empty(t, p.Essentials.Venue)
}

func TestProjectSection_RoundTrip(t *testing.T) {
	p := NewProject("owner-1")

	for _, name := range AllSectionNames() {
		section, err := p.Section(name)
		require.NoError(t, err)
		assert.Equal(t, name, section.SectionName())
	}

	_, err := p.Section("budget")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestProjectSetSection(t *testing.T) {
	p := NewProject("owner-1")

	tl := Timeline{Events: []Event{{ID: "a", Time: "10:00", Description: "ceremony"}}}
	require.NoError(t, p.SetSection(tl))
	assert.Len(t, p.Timeline.Events, 1)
}

func TestProjectValidate_NestsUnderSectionName(t *testing.T) {
	p := NewProject("owner-1")
	p.Essentials.Date = "bad-date"
	p.People.Members = []Person{{ID: "x"}}

	errs := p.Validate()
	require.NotNil(t, errs)
	assert.NotNil(t, errs.At("essentials", "date"))
	assert.NotNil(t, errs.At("people", "members", "0", "name"))
	assert.Nil(t, errs.At("timeline"))
}

func TestSectionPatchValidate(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		err := SectionPatch{}.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("mismatched key", func(t *testing.T) {
		patch := SectionPatch{SectionPeople: DefaultTimeline()}
		err := patch.Validate()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown name", func(t *testing.T) {
		patch := SectionPatch{SectionName("budget"): DefaultTimeline()}
		err := patch.Validate()
		assert.ErrorIs(t, err, ErrUnknownSection)
	})

	t.Run("valid multi-section patch", func(t *testing.T) {
		patch := SectionPatch{
			SectionTimeline: DefaultTimeline(),
			SectionPeople:   DefaultPeople(),
		}
		assert.NoError(t, patch.Validate())
	})
}

func TestRecordCount(t *testing.T) {
	p := NewProject("owner-1")
	p.Photos.Shots = []ShotRequest{{ID: "a", Title: "First look"}}

	assert.Equal(t, 1, p.RecordCount(SectionPhotos))
	assert.Equal(t, 0, p.RecordCount(SectionTimeline))
	assert.Equal(t, 0, p.RecordCount(SectionEssentials))
}
