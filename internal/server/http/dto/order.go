package dto

import (
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// OrderItemRequest references a catalogue product in a checkout cart.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ShipmentRequest carries contact and address details collected at checkout.
type ShipmentRequest struct {
	Email    string `json:"email"`
	AltEmail string `json:"alt_email"`
	Phone    string `json:"phone"`
	AltPhone string `json:"alt_phone"`
	State    string `json:"state"`
	Address  string `json:"address"`
}

// PlaceOrderRequest describes the checkout payload.
type PlaceOrderRequest struct {
	Items         []OrderItemRequest `json:"items"`
	PaymentMethod string             `json:"payment_method"`
	Shipment      ShipmentRequest    `json:"shipment"`
}

// RejectRequest carries the mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// OrderItemResponse is a snapshotted cart line.
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// PaymentProofResponse is the customer-submitted transfer evidence.
type PaymentProofResponse struct {
	SenderName  string    `json:"sender_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID              string                `json:"id"`
	UserID          int64                 `json:"user_id"`
	UserEmail       string                `json:"user_email"`
	Items           []OrderItemResponse   `json:"items"`
	TotalAmount     float64               `json:"total_amount"`
	Status          string                `json:"status"`
	PaymentMethod   string                `json:"payment_method"`
	Shipment        ShipmentRequest       `json:"shipment"`
	PaymentProof    *PaymentProofResponse `json:"payment_proof,omitempty"`
	CashbackDebited float64               `json:"cashback_debited"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ToOrderResponse maps a domain order onto the wire shape.
func ToOrderResponse(order model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	resp := OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		UserEmail:     order.UserEmail,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		Shipment: ShipmentRequest{
			Email:    order.ShipmentDetails.Email,
			AltEmail: order.ShipmentDetails.AltEmail,
			Phone:    order.ShipmentDetails.Phone,
			AltPhone: order.ShipmentDetails.AltPhone,
			State:    order.ShipmentDetails.State,
			Address:  order.ShipmentDetails.Address,
		},
		CashbackDebited: order.CashbackDebited,
		RejectionReason: order.RejectionReason,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if order.PaymentProof != nil {
		resp.PaymentProof = &PaymentProofResponse{
			SenderName:  order.PaymentProof.SenderName,
			ImageURL:    order.PaymentProof.ImageURL,
			SubmittedAt: order.PaymentProof.SubmittedAt,
		}
	}
	return resp
}
