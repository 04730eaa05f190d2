// Package essentialsform provides the modal edit form for the essentials
// section. The view is a thin rendering layer: the working copy, validation
// and submission all live in the form session it is bound to.
package essentialsform

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
	fieldPartnerOne = iota
	fieldPartnerTwo
	fieldDate
	fieldVenue
	fieldContactEmail
	fieldGuestCount
	fieldCount
)

// fieldLabels maps field index to display label.
var fieldLabels = [fieldCount]string{
	"Partner one",
	"Partner two",
	"Date (YYYY-MM-DD)",
	"Venue",
	"Contact email",
	"Guest count",
}

// fieldPaths maps field index to the validation tree path.
var fieldPaths = [fieldCount]string{
	"partner_one",
	"partner_two",
	"date",
	"venue",
	"contact_email",
	"guest_count",
}

// View is the essentials edit form.
type View struct {
	styles  *styles.Styles
	session *services.FormSession[domain.Essentials]

	inputs     [fieldCount]textinput.Model
	focusIndex int

	// guestCountErr is a local parse error for the numeric field; it never
	// reaches the working copy.
	guestCountErr string

	submitting bool
	err        error

	width  int
	height int
}

// NewView creates the form bound to an already-open session and seeds the
// inputs from its working copy.
func NewView(s *styles.Styles, session *services.FormSession[domain.Essentials]) *View {
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

	working := session.Working()
	v.inputs[fieldPartnerOne].SetValue(working.PartnerOne)
	v.inputs[fieldPartnerTwo].SetValue(working.PartnerTwo)
	v.inputs[fieldDate].SetValue(working.Date)
	v.inputs[fieldVenue].SetValue(working.Venue)
	v.inputs[fieldContactEmail].SetValue(working.ContactEmail)
	if working.GuestCount != 0 {
		v.inputs[fieldGuestCount].SetValue(strconv.Itoa(working.GuestCount))
	}

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
			// A submit is in flight; ignore input until it resolves.
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

// syncWorkingCopy pushes the input values into the session, which revalidates
// synchronously. Runs on every keystroke; validation is pure so that is fine.
func (v *View) syncWorkingCopy() {
	v.guestCountErr = ""
	count := 0
	if raw := strings.TrimSpace(v.inputs[fieldGuestCount].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			v.guestCountErr = "guest count must be a number"
		} else {
			count = parsed
		}
	}

	v.session.Mutate(func(e *domain.Essentials) {
		e.PartnerOne = v.inputs[fieldPartnerOne].Value()
		e.PartnerTwo = v.inputs[fieldPartnerTwo].Value()
		e.Date = v.inputs[fieldDate].Value()
		e.Venue = v.inputs[fieldVenue].Value()
		e.ContactEmail = v.inputs[fieldContactEmail].Value()
		e.GuestCount = count
	})
}

// submit runs the session submit as a command. On success the saved message
// carries the project ID, which in create mode only exists after the submit.
func (v *View) submit() tea.Cmd {
	if v.guestCountErr != "" {
		return nil
	}
	v.submitting = true
	v.err = nil
	return func() tea.Msg {
		if err := v.session.Submit(context.Background()); err != nil {
			return messages.SubmitFailed{Err: err}
		}
		return messages.SectionSaved{ProjectID: v.session.ProjectID()}
	}
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Essential Info"))
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
		if node := errs.At(fieldPaths[i]); node != nil && len(node.Messages) > 0 {
			b.WriteString(v.styles.Error.Render("  " + node.Messages[0]))
			b.WriteString("\n")
		}
		if i == fieldGuestCount && v.guestCountErr != "" {
			b.WriteString(v.styles.Error.Render("  " + v.guestCountErr))
			b.WriteString("\n")
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
