package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(id, at, desc string) Event {
	return Event{ID: id, Time: at, Description: desc}
}

func TestParseMergeStrategy(t *testing.T) {
	t.Run("valid strategies", func(t *testing.T) {
		s, err := ParseMergeStrategy("merge")
		require.NoError(t, err)
		assert.Equal(t, StrategyMerge, s)

		s, err = ParseMergeStrategy("replace")
		require.NoError(t, err)
		assert.Equal(t, StrategyReplace, s)
	})

	t.Run("invalid strategy", func(t *testing.T) {
		_, err := ParseMergeStrategy("overwrite")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestMerge_Replace(t *testing.T) {
	existing := []Event{event("a", "10:00", "ceremony"), event("b", "12:00", "lunch")}
	incoming := []Event{event("c", "15:00", "portraits")}

	result, err := Merge(existing, incoming, StrategyReplace)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Kept)
	assert.Equal(t, 1, result.Added)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "c", result.Records[0].ID)
}

func TestMerge_ReplaceKeepsIncomingDuplicates(t *testing.T) {
	// Replace is verbatim: duplicates inside incoming survive.
	incoming := []Event{event("a", "10:00", "ceremony"), event("b", "10:00", "ceremony")}

	result, err := Merge(nil, incoming, StrategyReplace)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total())
}

func TestMerge_AddsNewContent(t *testing.T) {
	existing := []Event{event("a", "10:00", "ceremony")}
	incoming := []Event{event("x", "15:00", "portraits")}

	result, err := Merge(existing, incoming, StrategyMerge)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Kept)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.Total())
}

func TestMerge_DropsContentDuplicates(t *testing.T) {
	// Same content under a different identifier is a duplicate.
	existing := []Event{event("a", "10:00", "ceremony")}
	incoming := []Event{event("imported-1", "10:00", "ceremony")}

	result, err := Merge(existing, incoming, StrategyMerge)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Kept)
	assert.Equal(t, 0, result.Added)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "a", result.Records[0].ID, "existing record wins the tie")
}

func TestMerge_EmptyIncomingIsExactNoOp(t *testing.T) {
	existing := []Event{
		event("a", "10:00", "ceremony"),
		event("b", "10:00", "ceremony"), // duplicate content already in existing
		event("c", "12:00", "lunch"),
	}

	result, err := Merge(existing, nil, StrategyMerge)
	require.NoError(t, err)

	// Existing records are never filtered, even when they duplicate each
	// other; order and identifiers are untouched.
	assert.Equal(t, existing, result.Records)
	assert.Equal(t, 3, result.Kept)
	assert.Equal(t, 0, result.Added)
}

func TestMerge_PreservesExistingOrderAndAppends(t *testing.T) {
	existing := []Event{event("a", "10:00", "ceremony"), event("b", "12:00", "lunch")}
	incoming := []Event{event("x", "15:00", "portraits"), event("y", "18:00", "dinner")}

	result, err := Merge(existing, incoming, StrategyMerge)
	require.NoError(t, err)

	ids := make([]string, len(result.Records))
	for i, r := range result.Records {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"a", "b", "x", "y"}, ids)
}

func TestMerge_DeduplicatesWithinIncoming(t *testing.T) {
	// Two incoming records with identical content: first occurrence wins.
	incoming := []Event{
		event("x", "15:00", "portraits"),
		event("y", "15:00", "portraits"),
	}

	result, err := Merge(nil, incoming, StrategyMerge)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "x", result.Records[0].ID)
}

func TestMerge_TimelineScenario(t *testing.T) {
	// One existing event; incoming has one duplicate and one new event.
	existing := []Event{event("a", "10:00", "ceremony")}
	incoming := []Event{
		event("i1", "10:00", "ceremony"),
		event("i2", "16:00", "cocktails"),
	}

	result, err := Merge(existing, incoming, StrategyMerge)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Kept)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.Total())
}

func TestMerge_IdentifierExcludedFromEquality(t *testing.T) {
	a := event("id-1", "10:00", "ceremony")
	b := event("id-2", "10:00", "ceremony")
	assert.True(t, a.ContentEquals(b))

	c := event("id-1", "10:30", "ceremony")
	assert.False(t, a.ContentEquals(c))
}

func TestMerge_WithEqualityOverride(t *testing.T) {
	// Identity-aware equality lets legitimately repeating content through.
	existing := []Event{event("a", "10:00", "toast")}
	incoming := []Event{event("b", "10:00", "toast")}

	byID := func(x, y Event) bool { return x.ID == y.ID }
	result, err := Merge(existing, incoming, StrategyMerge, WithEquality(byID))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 2, result.Total())
}

func TestMerge_UnknownStrategy(t *testing.T) {
	_, err := Merge[Event](nil, nil, MergeStrategy("upsert"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	existing := []Event{event("a", "10:00", "ceremony")}
	incoming := []Event{event("x", "15:00", "portraits")}

	result, err := Merge(existing, incoming, StrategyMerge)
	require.NoError(t, err)

	result.Records[0].Description = "changed"
	assert.Equal(t, "ceremony", existing[0].Description)
}

func TestShotRequestContentEquals(t *testing.T) {
	a := ShotRequest{ID: "1", Title: "First look", Subjects: []string{"couple"}}
	b := ShotRequest{ID: "2", Title: "First look", Subjects: []string{"couple"}}
	assert.True(t, a.ContentEquals(b))

	c := ShotRequest{ID: "3", Title: "First look", Subjects: []string{"couple", "parents"}}
	assert.False(t, a.ContentEquals(c))
}
