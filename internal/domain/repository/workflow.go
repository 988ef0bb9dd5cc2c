package repository

import (
	"context"

	"github.com/naijamart/storefront/internal/domain/model"
)

// WorkflowRepository applies order status transitions. Every method runs in a
// single transaction: the order row is locked, the current status is compared
// against the expected source status (ErrConflict on mismatch), and all
// ledger, balance and counter effects commit together with the status flip or
// not at all.
type WorkflowRepository interface {
	// SubmitPaymentProof moves pending_payment -> pending_approval, attaches
	// the proof and performs the optimistic cashback debit: the full total
	// for cashback orders (ErrInsufficientFunds when the balance is short),
	// min(balance, total) for mixed orders, nothing for direct ones.
	SubmitPaymentProof(ctx context.Context, orderID string, proof model.PaymentProof) (*model.Order, error)
	// ApprovePayment moves pending_approval -> approved and increments the
	// owner's totalOrders and totalSpending.
	ApprovePayment(ctx context.Context, orderID string) (*model.Order, error)
	// RejectOrder moves pending_approval -> rejected, records the reason and
	// credits back exactly the amount debited at proof submission, if any.
	RejectOrder(ctx context.Context, orderID, reason string) (*model.Order, error)
	// MarkShipped moves approved -> shipped.
	MarkShipped(ctx context.Context, orderID string) (*model.Order, error)
	// DelayShipment moves approved back to pending_approval.
	DelayShipment(ctx context.Context, orderID string) (*model.Order, error)
	// MarkDelivered moves shipped -> delivered.
	MarkDelivered(ctx context.Context, orderID string) (*model.Order, error)
}
