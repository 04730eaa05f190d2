// Package timelineform provides the modal form for appending one event to a
// project's timeline. Like the essentials form it is a thin rendering layer
// over a form session; the appended event lives in the session's working copy
// until submit.
package timelineform

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/messages"
	"github.com/plume-labs/plume-cli/internal/adapters/driving/tui/styles"
	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

// Field indices, in display order.
const (
	fieldTime = iota
	fieldDescription
	fieldLocation
	fieldOwner
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Time (HH:MM)",
	"What happens",
	"Location",
	"Owner",
}

// View is the add-event form.
type View struct {
	styles  *styles.Styles
	session *services.FormSession[domain.Timeline]

	inputs     [fieldCount]textinput.Model
	focusIndex int

	// eventIndex is where the pending event sits in the working copy; the
	// validation tree nests its errors under events/<index>.
	eventIndex int

	submitting bool
	err        error

	width  int
	height int
}

// NewView creates the form bound to an already-open timeline session and
// appends a pending event to its working copy.
func NewView(s *styles.Styles, session *services.FormSession[domain.Timeline]) *View {
	v := &View{
		styles:  s,
		session: session,
	}

	for i := range v.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 256
		v.inputs[i] = ti
	}

	v.eventIndex = len(session.Working().Events)
	session.Mutate(func(t *domain.Timeline) {
		t.Events = append(t.Events, domain.NewEvent("", ""))
	})

	return v
}

// Init focuses the first input.
func (v *View) Init() tea.Cmd {
	return v.inputs[0].Focus()
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.SubmitFailed:
		v.submitting = false
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		if v.submitting {
			return v, nil
		}
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.session.Cancel()
		return v, func() tea.Msg { return messages.SessionCancelled{} }

	case "tab", "down", "enter":
		if msg.String() == "enter" && v.focusIndex == fieldCount-1 {
			return v, v.submit()
		}
		v.focusIndex = (v.focusIndex + 1) % fieldCount
		return v, v.updateFocus()

	case "shift+tab", "up":
		v.focusIndex--
		if v.focusIndex < 0 {
			v.focusIndex = fieldCount - 1
		}
		return v, v.updateFocus()

	case "ctrl+s":
		return v, v.submit()

	default:
		var cmd tea.Cmd
		v.inputs[v.focusIndex], cmd = v.inputs[v.focusIndex].Update(msg)
		v.syncWorkingCopy()
		return v, cmd
	}
}

func (v *View) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range v.inputs {
		if i == v.focusIndex {
			cmds = append(cmds, v.inputs[i].Focus())
		} else {
			v.inputs[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// syncWorkingCopy pushes the input values into the pending event. The session
// revalidates synchronously on every mutation.
func (v *View) syncWorkingCopy() {
	v.session.Mutate(func(t *domain.Timeline) {
		event := &t.Events[v.eventIndex]
		event.Time = v.inputs[fieldTime].Value()
		event.Description = v.inputs[fieldDescription].Value()
		event.Location = v.inputs[fieldLocation].Value()
		event.Owner = v.inputs[fieldOwner].Value()
	})
}

// submit runs the session submit as a command.
func (v *View) submit() tea.Cmd {
	v.submitting = true
	v.err = nil
	return func() tea.Msg {
		if err := v.session.Submit(context.Background()); err != nil {
			return messages.SubmitFailed{Err: err}
		}
		return messages.SectionSaved{ProjectID: v.session.ProjectID()}
	}
}

// fieldErrorPath maps a field index to its path segments in the validation
// tree, nil for fields that cannot fail validation.
func (v *View) fieldErrorPath(i int) []string {
	var leaf string
	switch i {
	case fieldTime:
		leaf = "time"
	case fieldDescription:
		leaf = "desc"
	default:
		return nil
	}
	return []string{"events", strconv.Itoa(v.eventIndex), leaf}
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Add Timeline Event"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	errs := v.session.Errors()
	for i := range v.inputs {
		b.WriteString(v.styles.Normal.Render(fieldLabels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(v.inputs[i].View())
		b.WriteString("\n")
		if path := v.fieldErrorPath(i); path != nil {
			if node := errs.At(path...); node != nil && len(node.Messages) > 0 {
				b.WriteString(v.styles.Error.Render("  " + node.Messages[0]))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if v.submitting {
		b.WriteString(v.styles.Muted.Render("Saving..."))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[tab] next field  [ctrl+s] save  [esc] cancel"))
	return b.String()
}

// Cancel discards the session's working copy. Idempotent.
func (v *View) Cancel() {
	v.session.Cancel()
}

// FocusIndex returns the focused field index (for testing).
func (v *View) FocusIndex() int {
	return v.focusIndex
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
