// Package tui provides the Bubbletea terminal UI for editing project
// sections through form sessions.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/messages"
	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/styles"
	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/views/essentialsform"
	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/views/timelineform"
	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

// App is the TUI application following the Elm architecture. One modal form
// is open at a time, mirroring the one-open-session rule of the form
// sessions underneath; exactly one of the view fields is set.
type App struct {
	styles *styles.Styles

	essentialsView *essentialsform.View
	timelineView   *timelineform.View

	// savedProjectID is set after a successful submit, for the caller to
	// report once the program exits.
	savedProjectID string

	// cancelled is true when the user backed out without saving.
	cancelled bool

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI around an already-open essentials session.
func NewApp(session *services.FormSession[domain.Essentials]) *App {
	s := styles.DefaultStyles()
	return &App{
		styles:         s,
		essentialsView: essentialsform.NewView(s, session),
	}
}

// NewTimelineApp creates the TUI around an already-open timeline session,
// showing the add-event form.
func NewTimelineApp(session *services.FormSession[domain.Timeline]) *App {
	s := styles.DefaultStyles()
	return &App{
		styles:       s,
		timelineView: timelineform.NewView(s, session),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	var formInit tea.Cmd
	if a.timelineView != nil {
		formInit = a.timelineView.Init()
	} else {
		formInit = a.essentialsView.Init()
	}
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("plume - Wedding Planner"),
		formInit,
	)
}

// updateForm forwards a message to whichever form is open.
func (a *App) updateForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if a.timelineView != nil {
		a.timelineView, cmd = a.timelineView.Update(msg)
	} else {
		a.essentialsView, cmd = a.essentialsView.Update(msg)
	}
	return cmd
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.setFormDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Same lifecycle as esc: the session must not be left editing.
			a.cancelForm()
			a.cancelled = true
			return a, tea.Quit
		}
		return a, a.updateForm(msg)

	case messages.SectionSaved:
		a.savedProjectID = msg.ProjectID
		return a, tea.Quit

	case messages.SessionCancelled:
		a.cancelled = true
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateForm(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.timelineView != nil {
		return a.timelineView.View()
	}
	return a.essentialsView.View()
}

func (a *App) cancelForm() {
	if a.timelineView != nil {
		a.timelineView.Cancel()
		return
	}
	a.essentialsView.Cancel()
}

func (a *App) setFormDimensions(width, height int) {
	if a.timelineView != nil {
		a.timelineView.SetDimensions(width, height)
		return
	}
	a.essentialsView.SetDimensions(width, height)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// SavedProjectID returns the project written by the last submit, or the
// empty string when nothing was saved.
func (a *App) SavedProjectID() string {
	return a.savedProjectID
}

// Cancelled returns whether the user backed out without saving.
func (a *App) Cancelled() bool {
	return a.cancelled
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.setFormDimensions(width, height)
}
