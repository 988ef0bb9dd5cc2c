package dto

import (
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// BalanceResponse summarizes the cashback position.
type BalanceResponse struct {
	Current       float64 `json:"current"`
	TotalOrders   int64   `json:"total_orders"`
	TotalSpending float64 `json:"total_spending"`
}

// LedgerEntryResponse is a single cashback ledger record.
type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReconcileRequest sets an explicit balance for a user.
type ReconcileRequest struct {
	Balance float64 `json:"balance"`
	Note    string  `json:"note"`
}

// ToLedgerEntryResponse maps a domain entry onto the wire shape.
func ToLedgerEntryResponse(e model.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Type:        string(e.Type),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
