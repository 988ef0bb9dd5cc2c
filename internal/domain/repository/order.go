package repository

import (
	"context"
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByStatus(ctx context.Context, statuses ...model.OrderStatus) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// SelectShippedBefore returns shipped orders whose last update is older
	// than the cutoff, for automatic delivery confirmation.
	SelectShippedBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
