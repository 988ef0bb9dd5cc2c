package model

import "time"

// EntryType classifies a cashback ledger entry.
type EntryType string

const (
	EntryTypePurchase       EntryType = "purchase"
	EntryTypeCashbackCredit EntryType = "cashback_credit"
	EntryTypeRefund         EntryType = "refund"
)

// LedgerEntry is an immutable record of a cashback balance change. Amount is
// a non-negative magnitude; the type decides the direction.
type LedgerEntry struct {
	ID          string
	UserID      int64
	Amount      float64
	Type        EntryType
	Description string
	CreatedAt   time.Time
}

// BalanceSummary aggregates a user's cashback position.
type BalanceSummary struct {
	Current       float64
	TotalOrders   int64
	TotalSpending float64
}
