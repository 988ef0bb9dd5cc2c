package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/domain/repository"
)

// NotifierUseCase appends user-facing notifications and handles acknowledgment.
// There is no dedup: retried transitions may produce duplicate notifications.
type NotifierUseCase struct {
	notifications repository.NotificationRepository
	publisher     ReadModelPublisher
	logger        *slog.Logger
}

// NewNotifierUseCase constructs NotifierUseCase.
func NewNotifierUseCase(notifications repository.NotificationRepository, publisher ReadModelPublisher, logger *slog.Logger) *NotifierUseCase {
	return &NotifierUseCase{notifications: notifications, publisher: publisher, logger: logger}
}

// Notify appends a notification for the user.
func (u *NotifierUseCase) Notify(ctx context.Context, userID int64, message string, kind model.NotificationType) (*model.Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: notification message is required", domainErrors.ErrValidation)
	}

	notification, err := u.notifications.Create(ctx, userID, message, kind)
	if err != nil {
		return nil, err
	}

	if u.publisher != nil {
		if err := u.publisher.PublishNotification(ctx, notification); err != nil {
			u.logger.Warn("notification event publish failed",
				slog.String("notification_id", notification.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return notification, nil
}

// ListByUser returns the user's notifications, newest first.
func (u *NotifierUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}

// UnreadCount returns the number of unread notifications.
func (u *NotifierUseCase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return u.notifications.CountUnread(ctx, userID)
}

// Acknowledge flips the read flag on the caller's own notification.
// Acknowledging twice is a no-op; another user's notification is not found.
func (u *NotifierUseCase) Acknowledge(ctx context.Context, userID int64, notificationID string) error {
	return u.notifications.MarkRead(ctx, userID, notificationID)
}
