package repository

import (
	"context"

	"github.com/naijamart/storefront/internal/domain/model"
)

// LedgerRepository manages the append-only cashback ledger. Every entry write
// and the matching balance mutation happen in the same transaction so the
// cached balance never drifts from the entry history.
type LedgerRepository interface {
	// Debit removes amount from the balance and appends a purchase entry.
	// Fails with ErrInsufficientFunds when amount exceeds the balance.
	Debit(ctx context.Context, userID int64, amount float64, description string) (*model.LedgerEntry, error)
	// Credit adds amount to the balance and appends an entry of the given type.
	Credit(ctx context.Context, userID int64, amount float64, entryType model.EntryType, description string) (*model.LedgerEntry, error)
	// SetBalance reconciles the balance to an explicit value by appending a
	// compensating entry for the difference. A zero delta writes nothing.
	SetBalance(ctx context.Context, userID int64, balance float64, description string) (*model.LedgerEntry, error)
	Balance(ctx context.Context, userID int64) (float64, error)
	ListByUser(ctx context.Context, userID int64) ([]model.LedgerEntry, error)
}
