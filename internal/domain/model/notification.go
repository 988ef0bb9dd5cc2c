package model

import "time"

// NotificationType maps to the severity styling shown to the user.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a user-facing message produced by a workflow transition.
// It is never deleted by the core; the only mutation is the read flip.
type Notification struct {
	ID        string
	UserID    int64
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}
