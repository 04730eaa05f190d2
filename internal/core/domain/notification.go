package domain

// NotificationKind classifies a user-facing notification.
type NotificationKind string

// Available notification kinds.
const (
	// NotifySuccess reports a completed operation.
	NotifySuccess NotificationKind = "success"

	// NotifyError reports a failed operation.
	NotifyError NotificationKind = "error"
)

// Notification is a user-facing message emitted by the edit and import
// flows. The UI layer is solely responsible for display and timing; every
// terminal failure produces exactly one notification, with internal cause
// detail going to the log instead.
type Notification struct {
	// Message is the human-readable text.
	Message string

	// Kind classifies the notification.
	Kind NotificationKind
}

// SuccessNotification builds a success notification.
func SuccessNotification(message string) Notification {
	return Notification{Message: message, Kind: NotifySuccess}
}

// ErrorNotification builds an error notification.
func ErrorNotification(message string) Notification {
	return Notification{Message: message, Kind: NotifyError}
}
