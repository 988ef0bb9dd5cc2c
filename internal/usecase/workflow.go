package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/domain/repository"
)

// WorkflowUseCase is the state machine driving order settlement. Status flips
// and their ledger effects are applied atomically by the workflow repository;
// notifications and read-model events are emitted after commit, at-least-once.
type WorkflowUseCase struct {
	orders    repository.OrderRepository
	workflow  repository.WorkflowRepository
	notifier  *NotifierUseCase
	publisher ReadModelPublisher
	logger    *slog.Logger
}

// NewWorkflowUseCase constructs WorkflowUseCase.
func NewWorkflowUseCase(
	orders repository.OrderRepository,
	workflow repository.WorkflowRepository,
	notifier *NotifierUseCase,
	publisher ReadModelPublisher,
	logger *slog.Logger,
) *WorkflowUseCase {
	return &WorkflowUseCase{
		orders:    orders,
		workflow:  workflow,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// SubmitProof attaches payment proof to the caller's own order and performs
// the optimistic cashback debit. Only the order owner may submit.
func (u *WorkflowUseCase) SubmitProof(ctx context.Context, actor model.Actor, orderID string, proof model.PaymentProof) (*model.Order, error) {
	if strings.TrimSpace(proof.SenderName) == "" {
		return nil, fmt.Errorf("%w: sender name is required", domainErrors.ErrValidation)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID {
		return nil, domainErrors.ErrUnauthorized
	}

	if proof.SubmittedAt.IsZero() {
		proof.SubmittedAt = time.Now()
	}

	updated, err := u.workflow.SubmitPaymentProof(ctx, orderID, proof)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, updated.UserID,
		fmt.Sprintf("We received your payment proof for order #%s. The finance team will verify it shortly.", model.ShortRef(updated.ID)),
		model.NotificationInfo)
	u.publish(ctx, updated)
	return updated, nil
}

// Approve verifies a payment. Payments staff only.
func (u *WorkflowUseCase) Approve(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}

	updated, err := u.workflow.ApprovePayment(ctx, orderID)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, updated.UserID,
		fmt.Sprintf("The finance department has received your payment for order #%s and has sent it to the marketing department to deliver it to %s.",
			model.ShortRef(updated.ID), updated.ShipmentDetails.Address),
		model.NotificationSuccess)
	u.publish(ctx, updated)
	return updated, nil
}

// Reject declines a payment with a mandatory reason and refunds whatever was
// debited from the cashback balance when the proof was submitted.
func (u *WorkflowUseCase) Reject(ctx context.Context, actor model.Actor, orderID, reason string) (*model.Order, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domainErrors.ErrValidation)
	}

	updated, err := u.workflow.RejectOrder(ctx, orderID, reason)
	if err != nil {
		return nil, err
	}

	ref := model.ShortRef(updated.ID)
	message := fmt.Sprintf("The payment of %s for order #%s wasn't received. Reason: %s. Please contact support if you feel there was an error.",
		formatAmount(updated.TotalAmount), ref, reason)
	if updated.CashbackDebited > 0 {
		message = fmt.Sprintf("Your order #%s has been rejected and %s has been credited back to your cashback balance. Reason: %s.",
			ref, formatAmount(updated.CashbackDebited), reason)
	}
	u.notify(ctx, updated.UserID, message, model.NotificationError)
	u.publish(ctx, updated)
	return updated, nil
}

// Ship confirms an approved order has left the warehouse. Shipment staff only.
func (u *WorkflowUseCase) Ship(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}

	updated, err := u.workflow.MarkShipped(ctx, orderID)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, updated.UserID,
		fmt.Sprintf("Your product is on its way to %s. Contact support for more info.", updated.ShipmentDetails.Address),
		model.NotificationSuccess)
	u.publish(ctx, updated)
	return updated, nil
}

// Delay marks an approved shipment as delayed, resetting the order to
// pending_approval. The revisited state mirrors production behaviour.
func (u *WorkflowUseCase) Delay(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}

	updated, err := u.workflow.DelayShipment(ctx, orderID)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, updated.UserID,
		"Your product shipment has been delayed. For more information, please contact support.",
		model.NotificationWarning)
	u.publish(ctx, updated)
	return updated, nil
}

// Deliver closes out a shipped order. Invoked by shipment staff or by the
// delivery worker acting as the system.
func (u *WorkflowUseCase) Deliver(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}

	updated, err := u.workflow.MarkDelivered(ctx, orderID)
	if err != nil {
		return nil, err
	}

	u.publish(ctx, updated)
	return updated, nil
}

// OrdersForDelivery returns shipped orders stale enough for automatic
// delivery confirmation.
func (u *WorkflowUseCase) OrdersForDelivery(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return u.orders.SelectShippedBefore(ctx, cutoff, limit)
}

// notify records a user notification. Failures are logged and swallowed: the
// transition has already committed and must not be reported as failed.
func (u *WorkflowUseCase) notify(ctx context.Context, userID int64, message string, kind model.NotificationType) {
	if u.notifier == nil {
		return
	}
	if _, err := u.notifier.Notify(ctx, userID, message, kind); err != nil {
		u.logger.Warn("notification delivery failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}

func (u *WorkflowUseCase) publish(ctx context.Context, order *model.Order) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.PublishOrderStatus(ctx, order); err != nil {
		u.logger.Warn("order event publish failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}

func formatAmount(v float64) string {
	return fmt.Sprintf("₦%.2f", v)
}
