package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

// Each transition locks the order row, compares the stored status against the
// expected source status and applies every side effect in the same
// transaction. A concurrent command that loses the race observes the already
// flipped status and fails with ErrConflict.

func getOrderForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
	return scanOrder(tx.QueryRow(ctx, query, orderID))
}

// requireTransition is the compare-and-swap guard: the locked row must still
// be in the expected source status, and the status pair must be legal per the
// domain transition table.
func requireTransition(order *model.Order, from, to model.OrderStatus) error {
	if order.Status != from {
		return fmt.Errorf("%w: order %s is %s, expected %s",
			domainErrors.ErrConflict, order.ID, order.Status, from)
	}
	if !model.CanTransition(from, to) {
		return fmt.Errorf("%w: order %s cannot move from %s to %s",
			domainErrors.ErrConflict, order.ID, from, to)
	}
	return nil
}

func lockBalance(ctx context.Context, tx pgx.Tx, userID int64) (float64, error) {
	const query = `SELECT cashback_balance FROM users WHERE id=$1 FOR UPDATE`
	var balance float64
	if err := tx.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return balance, nil
}

func (r *workflowRepository) SubmitPaymentProof(ctx context.Context, orderID string, proof model.PaymentProof) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = getOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := requireTransition(order, model.OrderStatusPendingPayment, model.OrderStatusPendingApproval); err != nil {
			return err
		}

		var debit float64
		switch order.PaymentMethod {
		case model.PaymentMethodCashback:
			balance, err := lockBalance(ctx, tx, order.UserID)
			if err != nil {
				return err
			}
			if balance < order.TotalAmount {
				return domainErrors.ErrInsufficientFunds
			}
			debit = order.TotalAmount
		case model.PaymentMethodMixed:
			balance, err := lockBalance(ctx, tx, order.UserID)
			if err != nil {
				return err
			}
			debit = min(balance, order.TotalAmount)
		}

		if debit > 0 {
			description := fmt.Sprintf("Payment for order %s", model.ShortRef(order.ID))
			if err := applyBalanceChange(ctx, tx, order.UserID, -debit); err != nil {
				return err
			}
			if _, err := insertLedgerEntry(ctx, tx, order.UserID, debit, model.EntryTypePurchase, description); err != nil {
				return err
			}
		}

		proofRaw, err := json.Marshal(proof)
		if err != nil {
			return fmt.Errorf("encode payment proof: %w", err)
		}
		const update = `UPDATE orders
                        SET status=$1, payment_proof=$2, cashback_debited=$3, updated_at=NOW()
                        WHERE id=$4 RETURNING updated_at`
		if err := tx.QueryRow(ctx, update, model.OrderStatusPendingApproval, proofRaw, debit, order.ID).Scan(&order.UpdatedAt); err != nil {
			return err
		}
		order.Status = model.OrderStatusPendingApproval
		order.PaymentProof = &proof
		order.CashbackDebited = debit
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *workflowRepository) ApprovePayment(ctx context.Context, orderID string) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = getOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := requireTransition(order, model.OrderStatusPendingApproval, model.OrderStatusApproved); err != nil {
			return err
		}
		if order.PaymentProof == nil {
			return fmt.Errorf("%w: order %s has no payment proof", domainErrors.ErrValidation, order.ID)
		}

		const bump = `UPDATE users
                      SET total_orders = total_orders + 1,
                          total_spending = total_spending + $1
                      WHERE id=$2`
		if _, err := tx.Exec(ctx, bump, order.TotalAmount, order.UserID); err != nil {
			return err
		}

		return flipStatus(ctx, tx, order, model.OrderStatusApproved)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *workflowRepository) RejectOrder(ctx context.Context, orderID, reason string) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = getOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := requireTransition(order, model.OrderStatusPendingApproval, model.OrderStatusRejected); err != nil {
			return err
		}

		// Refund exactly what was debited at proof submission. Direct
		// payments and zero debits leave the ledger untouched.
		if order.CashbackDebited > 0 {
			description := fmt.Sprintf("Refund for rejected order %s", model.ShortRef(order.ID))
			if err := applyBalanceChange(ctx, tx, order.UserID, order.CashbackDebited); err != nil {
				return err
			}
			if _, err := insertLedgerEntry(ctx, tx, order.UserID, order.CashbackDebited, model.EntryTypeRefund, description); err != nil {
				return err
			}
		}

		const update = `UPDATE orders SET status=$1, rejection_reason=$2, updated_at=NOW()
                        WHERE id=$3 RETURNING updated_at`
		if err := tx.QueryRow(ctx, update, model.OrderStatusRejected, reason, order.ID).Scan(&order.UpdatedAt); err != nil {
			return err
		}
		order.Status = model.OrderStatusRejected
		order.RejectionReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *workflowRepository) MarkShipped(ctx context.Context, orderID string) (*model.Order, error) {
	return r.simpleTransition(ctx, orderID, model.OrderStatusApproved, model.OrderStatusShipped)
}

func (r *workflowRepository) DelayShipment(ctx context.Context, orderID string) (*model.Order, error) {
	return r.simpleTransition(ctx, orderID, model.OrderStatusApproved, model.OrderStatusPendingApproval)
}

func (r *workflowRepository) MarkDelivered(ctx context.Context, orderID string) (*model.Order, error) {
	return r.simpleTransition(ctx, orderID, model.OrderStatusShipped, model.OrderStatusDelivered)
}

func (r *workflowRepository) simpleTransition(ctx context.Context, orderID string, from, to model.OrderStatus) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = getOrderForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := requireTransition(order, from, to); err != nil {
			return err
		}
		return flipStatus(ctx, tx, order, to)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func flipStatus(ctx context.Context, tx pgx.Tx, order *model.Order, to model.OrderStatus) error {
	const update = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`
	if err := tx.QueryRow(ctx, update, to, order.ID).Scan(&order.UpdatedAt); err != nil {
		return err
	}
	order.Status = to
	return nil
}
