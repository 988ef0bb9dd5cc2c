package readmodel

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/naijamart/storefront/internal/domain/model"
)

// Channel names consumed by the storefront read model.
const (
	OrderStatusChannel  = "orders.status"
	NotificationChannel = "notifications"
)

// redisPublisher is the slice of redis.Client used here; tests stub it.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Publisher pushes order and notification events to redis pub/sub so
// connected clients can refresh without polling. Delivery is best effort:
// the database remains the source of truth.
type Publisher struct {
	client redisPublisher
	logger *slog.Logger
}

// NewPublisher constructs Publisher.
func NewPublisher(client redisPublisher, logger *slog.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

type orderEvent struct {
	OrderID     string    `json:"order_id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type notificationEvent struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// PublishOrderStatus announces an order status change.
func (p *Publisher) PublishOrderStatus(ctx context.Context, order *model.Order) error {
	payload, err := json.Marshal(orderEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		UpdatedAt:   order.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, OrderStatusChannel, payload).Err()
}

// PublishNotification announces a freshly created notification.
func (p *Publisher) PublishNotification(ctx context.Context, notification *model.Notification) error {
	payload, err := json.Marshal(notificationEvent{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Type:      string(notification.Type),
		CreatedAt: notification.CreatedAt,
	})
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, NotificationChannel, payload).Err()
}
