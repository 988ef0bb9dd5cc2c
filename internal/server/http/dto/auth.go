package dto

import (
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Role            string    `json:"role"`
	CashbackBalance float64   `json:"cashback_balance"`
	TotalOrders     int64     `json:"total_orders"`
	TotalSpending   float64   `json:"total_spending"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthResponse carries the issued token together with the account.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse maps a domain user onto the wire shape.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            string(u.Role),
		CashbackBalance: u.CashbackBalance,
		TotalOrders:     u.TotalOrders,
		TotalSpending:   u.TotalSpending,
		CreatedAt:       u.CreatedAt,
	}
}
