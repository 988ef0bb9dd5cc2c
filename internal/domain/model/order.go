package model

import (
	"strings"
	"time"
)

// OrderStatus describes the settlement lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPendingPayment  OrderStatus = "pending_payment"
	OrderStatusPendingApproval OrderStatus = "pending_approval"
	OrderStatusApproved        OrderStatus = "approved"
	OrderStatusRejected        OrderStatus = "rejected"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
)

// PaymentMethod describes how the customer settles an order.
type PaymentMethod string

const (
	PaymentMethodCashback PaymentMethod = "cashback"
	PaymentMethodDirect   PaymentMethod = "direct"
	PaymentMethodMixed    PaymentMethod = "mixed"
)

// validNext enumerates legal status transitions. Shipment staff may push an
// approved order back to pending_approval when marking it delayed; the reused
// state is deliberate and mirrors production behaviour.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPendingPayment:  {OrderStatusPendingApproval: true},
	OrderStatusPendingApproval: {OrderStatusApproved: true, OrderStatusRejected: true},
	OrderStatusApproved:        {OrderStatusShipped: true, OrderStatusPendingApproval: true},
	OrderStatusShipped:         {OrderStatusDelivered: true},
	OrderStatusRejected:        {},
	OrderStatusDelivered:       {},
}

// CanTransition reports whether a status change is legal.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// CartItem is a snapshot of a product taken at checkout time. Later product
// edits or deletions do not affect it.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// ShipmentDetails holds contact and delivery address collected at checkout.
type ShipmentDetails struct {
	Email    string `json:"email,omitempty"`
	AltEmail string `json:"alt_email,omitempty"`
	Phone    string `json:"phone"`
	AltPhone string `json:"alt_phone,omitempty"`
	State    string `json:"state"`
	Address  string `json:"address"`
}

// PaymentProof is the customer-submitted evidence of a bank transfer.
type PaymentProof struct {
	SenderName  string    `json:"sender_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Order is a single checkout's worth of items together with its settlement state.
type Order struct {
	ID              string
	UserID          int64
	UserEmail       string
	Items           []CartItem
	TotalAmount     float64
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	ShipmentDetails ShipmentDetails
	PaymentProof    *PaymentProof
	// CashbackDebited is the amount actually taken from the cashback balance
	// when the proof was submitted; a rejection refunds exactly this amount.
	CashbackDebited float64
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ShortRef returns the human-facing order reference used in notifications
// and ledger descriptions: the last six characters of the ID, uppercased.
func ShortRef(orderID string) string {
	if len(orderID) > 6 {
		orderID = orderID[len(orderID)-6:]
	}
	return strings.ToUpper(orderID)
}
