package handlers

import (
	"context"
	"io"
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, fullName, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, model.Role, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// CatalogFacade exposes catalogue reads and staff-only writes.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, actor model.Actor, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, actor model.Actor, product *model.Product) error
	DeleteProduct(ctx context.Context, actor model.Actor, id string) error
}

// OrderFacade encapsulates checkout and order reads exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, items []model.CartItem, method model.PaymentMethod, details model.ShipmentDetails) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
}

// WorkflowFacade drives the settlement state machine.
type WorkflowFacade interface {
	UploadProofImage(ctx context.Context, filename string, content io.Reader) (string, error)
	SubmitProof(ctx context.Context, actor model.Actor, orderID string, proof model.PaymentProof) (*model.Order, error)
	ApprovePayment(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error)
	RejectOrder(ctx context.Context, actor model.Actor, orderID, reason string) (*model.Order, error)
	ShipOrder(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error)
	DelayShipment(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error)
	DeliverOrder(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error)
}

// LedgerFacade provides cashback balance operations.
type LedgerFacade interface {
	Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error)
	LedgerHistory(ctx context.Context, userID int64) ([]model.LedgerEntry, error)
	ReconcileBalance(ctx context.Context, actor model.Actor, userID int64, balance float64, note string) (*model.LedgerEntry, error)
}

// NotificationFacade provides user notification operations.
type NotificationFacade interface {
	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
	UnreadNotifications(ctx context.Context, userID int64) (int64, error)
	AcknowledgeNotification(ctx context.Context, userID int64, notificationID string) error
}

// AdminFacade covers staff-only account views.
type AdminFacade interface {
	Users(ctx context.Context) ([]model.User, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	WorkflowFacade
	LedgerFacade
	NotificationFacade
	AdminFacade

	OrdersForDelivery(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	ConfirmDelivery(ctx context.Context, orderID string) error
}
