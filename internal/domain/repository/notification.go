package repository

import (
	"context"

	"github.com/naijamart/storefront/internal/domain/model"
)

// NotificationRepository stores user-facing notifications. Records are
// append-only except for the read flip.
type NotificationRepository interface {
	Create(ctx context.Context, userID int64, message string, kind model.NotificationType) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	// MarkRead flips the read flag on the recipient's own notification.
	// Acknowledging an already-read notification is a no-op, not an error;
	// a notification belonging to another user reads as not found.
	MarkRead(ctx context.Context, userID int64, id string) error
}
