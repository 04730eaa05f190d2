package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImportBatch(t *testing.T) {
	data := []byte(`{
		"timeline": [{"time": "10:00", "desc": "ceremony"}],
		"people": [{"name": "Sam", "role": "florist"}],
		"photos": [{"title": "First look", "subjects": ["couple"]}]
	}`)

	batch, err := ParseImportBatch(data)
	require.NoError(t, err)

	require.Len(t, batch.Timeline, 1)
	require.Len(t, batch.People, 1)
	require.Len(t, batch.Photos, 1)
	assert.Empty(t, batch.Unknown)
	assert.False(t, batch.IsEmpty())
	assert.Equal(t, []SectionName{SectionTimeline, SectionPeople, SectionPhotos}, batch.Sections())
}

func TestParseImportBatch_AppliesDefaults(t *testing.T) {
	data := []byte(`{
		"people": [{"name": "Sam", "role": "florist"}],
		"photos": [{"title": "First look"}]
	}`)

	batch, err := ParseImportBatch(data)
	require.NoError(t, err)

	assert.NotEmpty(t, batch.People[0].ID, "missing identifiers are assigned")
	assert.Equal(t, NotifyNone, batch.People[0].Notify)
	assert.Equal(t, PriorityNormal, batch.Photos[0].Priority)
}

func TestParseImportBatch_UnknownSections(t *testing.T) {
	data := []byte(`{
		"timeline": [{"time": "10:00", "desc": "ceremony"}],
		"budget": [{"item": "flowers"}],
		"essentials": {"venue": "Hillside Barn"}
	}`)

	batch, err := ParseImportBatch(data)
	require.NoError(t, err)

	require.Len(t, batch.Timeline, 1)
	// Scalar sections are not importable, so essentials lands in Unknown
	// alongside the truly unrecognised name.
	assert.ElementsMatch(t, []string{"budget", "essentials"}, batch.Unknown)
}

func TestParseImportBatch_IgnoresExtraRecordFields(t *testing.T) {
	data := []byte(`{
		"timeline": [{"time": "10:00", "desc": "ceremony", "exported_by": "planner-3000"}]
	}`)

	batch, err := ParseImportBatch(data)
	require.NoError(t, err)
	require.Len(t, batch.Timeline, 1)
	assert.Equal(t, "ceremony", batch.Timeline[0].Description)
}

func TestParseImportBatch_Malformed(t *testing.T) {
	t.Run("not an object", func(t *testing.T) {
		_, err := ParseImportBatch([]byte(`[1, 2, 3]`))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("group is not an array", func(t *testing.T) {
		_, err := ParseImportBatch([]byte(`{"timeline": {"time": "10:00"}}`))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestImportBatch_IsEmpty(t *testing.T) {
	batch, err := ParseImportBatch([]byte(`{"budget": []}`))
	require.NoError(t, err)
	assert.True(t, batch.IsEmpty())
	assert.Empty(t, batch.Sections())
}
