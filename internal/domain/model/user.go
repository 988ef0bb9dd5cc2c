package model

import "time"

// Role describes what a signed-in principal is allowed to do.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered storefront customer or staff member.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	// CashbackBalance is mutated only through ledger-producing operations.
	CashbackBalance float64
	TotalOrders     int64
	TotalSpending   float64
	CreatedAt       time.Time
}

// Actor identifies who is invoking a workflow command. The engine performs
// its own capability checks; route guarding alone is not a security boundary.
type Actor struct {
	UserID int64
	Role   Role
}

// IsStaff reports whether the actor may drive staff-only transitions.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin
}

// SystemActor is used by background processes such as the delivery worker.
var SystemActor = Actor{UserID: 0, Role: RoleAdmin}
