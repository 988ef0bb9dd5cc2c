package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

const orderColumns = `id, user_id, user_email, items, total_amount, status, payment_method,
        shipment_details, payment_proof, cashback_debited, rejection_reason, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var (
		o           model.Order
		itemsRaw    []byte
		shipmentRaw []byte
		proofRaw    []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &o.UserEmail, &itemsRaw, &o.TotalAmount, &o.Status,
		&o.PaymentMethod, &shipmentRaw, &proofRaw, &o.CashbackDebited, &o.RejectionReason,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if err := json.Unmarshal(shipmentRaw, &o.ShipmentDetails); err != nil {
		return nil, fmt.Errorf("decode shipment details: %w", err)
	}
	if len(proofRaw) > 0 {
		var proof model.PaymentProof
		if err := json.Unmarshal(proofRaw, &proof); err != nil {
			return nil, fmt.Errorf("decode payment proof: %w", err)
		}
		o.PaymentProof = &proof
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	itemsRaw, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	shipmentRaw, err := json.Marshal(order.ShipmentDetails)
	if err != nil {
		return nil, fmt.Errorf("encode shipment details: %w", err)
	}

	const query = `INSERT INTO orders (id, user_id, user_email, items, total_amount, status, payment_method, shipment_details)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING created_at, updated_at`
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.UserID, order.UserEmail, itemsRaw, order.TotalAmount,
		order.Status, order.PaymentMethod, shipmentRaw,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, statuses ...model.OrderStatus) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE status = ANY($1) ORDER BY created_at DESC`
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	rows, err := r.storage.pool.Query(ctx, query, values)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) SelectShippedBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE status='shipped' AND updated_at < $1
                   ORDER BY updated_at
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
