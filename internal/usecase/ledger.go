package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/domain/repository"
)

// LedgerUseCase manages operations with the cashback ledger.
type LedgerUseCase struct {
	ledger repository.LedgerRepository
	users  repository.UserRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(ledger repository.LedgerRepository, users repository.UserRepository) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger, users: users}
}

// Summary returns the user's cashback position and purchase counters.
func (u *LedgerUseCase) Summary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.BalanceSummary{
		Current:       user.CashbackBalance,
		TotalOrders:   user.TotalOrders,
		TotalSpending: user.TotalSpending,
	}, nil
}

// History returns the user's ledger entries, newest first.
func (u *LedgerUseCase) History(ctx context.Context, userID int64) ([]model.LedgerEntry, error) {
	return u.ledger.ListByUser(ctx, userID)
}

// Debit removes amount from the balance with a purchase entry.
func (u *LedgerUseCase) Debit(ctx context.Context, userID int64, amount float64, description string) (*model.LedgerEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", domainErrors.ErrValidation)
	}
	return u.ledger.Debit(ctx, userID, amount, description)
}

// Credit adds amount to the balance with an entry of the given type.
func (u *LedgerUseCase) Credit(ctx context.Context, userID int64, amount float64, entryType model.EntryType, description string) (*model.LedgerEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive", domainErrors.ErrValidation)
	}
	switch entryType {
	case model.EntryTypeCashbackCredit, model.EntryTypeRefund:
	default:
		return nil, fmt.Errorf("%w: %q is not a credit entry type", domainErrors.ErrValidation, entryType)
	}
	return u.ledger.Credit(ctx, userID, amount, entryType, description)
}

// Reconcile sets a user's balance to an explicit value through a compensating
// ledger entry. This is the only sanctioned way for staff to edit a balance.
func (u *LedgerUseCase) Reconcile(ctx context.Context, actor model.Actor, userID int64, balance float64, note string) (*model.LedgerEntry, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}
	if balance < 0 {
		return nil, fmt.Errorf("%w: balance cannot be negative", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(note) == "" {
		note = "Balance reconciliation by staff"
	}
	return u.ledger.SetBalance(ctx, userID, balance, note)
}
