package dto

import (
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// NotificationResponse is a user-facing message entry.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse carries the unread notification badge count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// ToNotificationResponse maps a domain notification onto the wire shape.
func ToNotificationResponse(n model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
