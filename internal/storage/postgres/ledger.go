package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

// applyBalanceChange adjusts the cached balance on the user row. Callers hold
// the row lock and have already validated the delta.
func applyBalanceChange(ctx context.Context, tx pgx.Tx, userID int64, delta float64) error {
	const query = `UPDATE users SET cashback_balance = cashback_balance + $1 WHERE id=$2`
	tag, err := tx.Exec(ctx, query, delta, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func insertLedgerEntry(ctx context.Context, tx pgx.Tx, userID int64, amount float64, entryType model.EntryType, description string) (*model.LedgerEntry, error) {
	entry := model.LedgerEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      amount,
		Type:        entryType,
		Description: description,
	}
	const query = `INSERT INTO ledger_entries (id, user_id, amount, type, description)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	if err := tx.QueryRow(ctx, query, entry.ID, entry.UserID, entry.Amount, entry.Type, entry.Description).Scan(&entry.CreatedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepository) Debit(ctx context.Context, userID int64, amount float64, description string) (*model.LedgerEntry, error) {
	var entry *model.LedgerEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		balance, err := lockBalance(ctx, tx, userID)
		if err != nil {
			return err
		}
		if balance < amount {
			return domainErrors.ErrInsufficientFunds
		}
		if err := applyBalanceChange(ctx, tx, userID, -amount); err != nil {
			return err
		}
		entry, err = insertLedgerEntry(ctx, tx, userID, amount, model.EntryTypePurchase, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ledgerRepository) Credit(ctx context.Context, userID int64, amount float64, entryType model.EntryType, description string) (*model.LedgerEntry, error) {
	var entry *model.LedgerEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := lockBalance(ctx, tx, userID); err != nil {
			return err
		}
		if err := applyBalanceChange(ctx, tx, userID, amount); err != nil {
			return err
		}
		var err error
		entry, err = insertLedgerEntry(ctx, tx, userID, amount, entryType, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ledgerRepository) SetBalance(ctx context.Context, userID int64, balance float64, description string) (*model.LedgerEntry, error) {
	var entry *model.LedgerEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockBalance(ctx, tx, userID)
		if err != nil {
			return err
		}
		delta := balance - current
		if delta == 0 {
			return nil
		}
		if err := applyBalanceChange(ctx, tx, userID, delta); err != nil {
			return err
		}
		entryType := model.EntryTypeCashbackCredit
		amount := delta
		if delta < 0 {
			entryType = model.EntryTypePurchase
			amount = -delta
		}
		entry, err = insertLedgerEntry(ctx, tx, userID, amount, entryType, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ledgerRepository) Balance(ctx context.Context, userID int64) (float64, error) {
	const query = `SELECT cashback_balance FROM users WHERE id=$1`
	var balance float64
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return balance, nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID int64) ([]model.LedgerEntry, error) {
	const query = `SELECT id, user_id, amount, type, description, created_at
                   FROM ledger_entries WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Type, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
