// Package notify implements the notification bus for terminal use: success
// messages go to stdout, errors to stderr, both styled with lipgloss.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
)

// Ensure ConsoleNotifier implements the interface.
var _ driven.Notifier = (*ConsoleNotifier)(nil)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
)

// ConsoleNotifier renders notifications to terminal streams.
type ConsoleNotifier struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsoleNotifier creates a notifier writing to stdout/stderr.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stdout, errOut: os.Stderr}
}

// NewConsoleNotifierWithWriters creates a notifier with custom writers.
// Useful for testing.
func NewConsoleNotifierWithWriters(out, errOut io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, errOut: errOut}
}

// Notify delivers one notification.
func (n *ConsoleNotifier) Notify(notification domain.Notification) {
	switch notification.Kind {
	case domain.NotifyError:
		fmt.Fprintln(n.errOut, errorStyle.Render("✗ "+notification.Message))
	default:
		fmt.Fprintln(n.out, successStyle.Render("✓ "+notification.Message))
	}
}
