package usecase

import (
	"context"

	"github.com/naijamart/storefront/internal/domain/model"
)

// ReadModelPublisher pushes committed changes to live read models. Delivery is
// fire-and-forget: a lost event degrades the UI, never correctness.
type ReadModelPublisher interface {
	PublishOrderStatus(ctx context.Context, order *model.Order) error
	PublishNotification(ctx context.Context, notification *model.Notification) error
}
