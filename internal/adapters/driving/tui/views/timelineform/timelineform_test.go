package timelineform

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/messages"
	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/styles"
	"github.com/plume-labs/plume-cli/internal/adapters/driven/storage/memory"
	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

// nullNotifier discards notifications.
type nullNotifier struct{}

func (nullNotifier) Notify(domain.Notification) {}

func newTestView(t *testing.T) (*View, *memory.ProjectStore, *services.FormSession[domain.Timeline], domain.Project) {
	t.Helper()
	store := memory.NewProjectStore()
	project := domain.NewProject("owner-1")
	project.Timeline.Events = []domain.Event{{ID: "a", Time: "10:00", Description: "ceremony"}}
	require.NoError(t, store.Save(context.Background(), project))

	session := services.NewTimelineSession(store, nullNotifier{})
	require.NoError(t, session.Open(context.Background(), project.ID))

	return NewView(styles.DefaultStyles(), session), store, session, project
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView_AppendsPendingEvent(t *testing.T) {
	_, _, session, _ := newTestView(t)

	working := session.Working()
	require.Len(t, working.Events, 2)
	assert.NotEmpty(t, working.Events[1].ID)
	assert.Empty(t, working.Events[1].Time)
}

func TestView_TypingFillsPendingEvent(t *testing.T) {
	v, _, session, _ := newTestView(t)

	v.focusIndex = fieldTime
	v.updateFocus()
	v, _ = v.Update(keyRunes("16:00"))

	v.focusIndex = fieldDescription
	v.updateFocus()
	v, _ = v.Update(keyRunes("cocktails"))

	working := session.Working()
	assert.Equal(t, "16:00", working.Events[1].Time)
	assert.Equal(t, "cocktails", working.Events[1].Description)
	assert.Nil(t, session.Errors())
}

func TestView_RendersFieldErrorsForPendingEvent(t *testing.T) {
	v, _, session, _ := newTestView(t)

	v.focusIndex = fieldTime
	v.updateFocus()
	v, _ = v.Update(keyRunes("25:99"))

	// The errors nest under the pending event's index in the working copy.
	node := session.Errors().At("events", "1", "time")
	require.NotNil(t, node)
	require.NotEmpty(t, node.Messages)

	out := v.View()
	assert.Contains(t, out, `time must be in HH:MM form, got "25:99"`)
	assert.Contains(t, out, "desc is required")
}

func TestView_EscCancelsWithoutAppending(t *testing.T) {
	v, store, session, project := newTestView(t)

	v.focusIndex = fieldTime
	v.updateFocus()
	v, _ = v.Update(keyRunes("16:00"))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.SessionCancelled{}, cmd())
	assert.Equal(t, services.StateClosed, session.State())

	stored, err := store.Get(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Timeline.Events, 1)
}

func TestView_SubmitPersistsNewEvent(t *testing.T) {
	v, store, _, project := newTestView(t)

	v.focusIndex = fieldTime
	v.updateFocus()
	v, _ = v.Update(keyRunes("16:00"))
	v.focusIndex = fieldDescription
	v.updateFocus()
	v, _ = v.Update(keyRunes("cocktails"))

	cmd := v.submit()
	require.NotNil(t, cmd)
	msg := cmd()

	saved, ok := msg.(messages.SectionSaved)
	require.True(t, ok, "expected SectionSaved, got %T", msg)
	assert.Equal(t, project.ID, saved.ProjectID)

	stored, err := store.Get(context.Background(), project.ID)
	require.NoError(t, err)
	require.Len(t, stored.Timeline.Events, 2)
	assert.Equal(t, "cocktails", stored.Timeline.Events[1].Description)
}

func TestView_SubmitEmptyEventFails(t *testing.T) {
	v, store, session, project := newTestView(t)

	cmd := v.submit()
	require.NotNil(t, cmd)
	msg := cmd()

	failed, ok := msg.(messages.SubmitFailed)
	require.True(t, ok, "expected SubmitFailed, got %T", msg)

	v, _ = v.Update(failed)
	assert.Equal(t, services.StateEditing, session.State())
	assert.Contains(t, v.View(), "Error:")

	stored, err := store.Get(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Timeline.Events, 1)
}
