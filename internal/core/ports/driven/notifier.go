package driven

import "github.com/plume-labs/plume-cli/internal/core/domain"

// Notifier is the notification bus the controller and orchestrator emit
// user-facing success/error events to. Display and timing belong to the UI
// layer.
type Notifier interface {
	// Notify delivers one notification.
	Notify(notification domain.Notification)
}
