package test

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// TokenParserStub implements the middleware token parsing contract.
type TokenParserStub struct {
	ID      int64
	Role    model.Role
	Err     error
	ParseFn func(string) (int64, model.Role, error)
}

// ParseToken either delegates to the override or returns the predefined result.
func (s TokenParserStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.Err != nil {
		return 0, "", s.Err
	}
	role := s.Role
	if role == "" {
		role = model.RoleUser
	}
	return s.ID, role, nil
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, model.Role, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, fullName, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, fullName, password)
	}
	return &model.User{ID: 1, Email: email, FullName: fullName, Role: model.RoleUser}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// ParseToken returns the stored identity for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, model.RoleUser, nil
}

// Profile returns the account behind the authenticated user.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Email: "user@example.com", Role: model.RoleUser}, nil
}

// CatalogFacadeStub simulates catalogue operations.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, string) (*model.Product, error)
	CreateProductFn func(context.Context, model.Actor, *model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, model.Actor, *model.Product) error
	DeleteProductFn func(context.Context, model.Actor, string) error
}

// Products returns the configured catalogue.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "prod-1", Name: "Air Fryer", Price: 45000}}, nil
}

// Product returns a single catalogue item.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Air Fryer", Price: 45000}, nil
}

// CreateProduct echoes the product back with an assigned identifier.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, actor model.Actor, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, actor, product)
	}
	created := *product
	if created.ID == "" {
		created.ID = "prod-1"
	}
	return &created, nil
}

// UpdateProduct executes the configured handler.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, actor model.Actor, product *model.Product) error {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, actor, product)
	}
	return nil
}

// DeleteProduct executes the configured handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, actor model.Actor, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, actor, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn     func(context.Context, int64, []model.CartItem, model.PaymentMethod, model.ShipmentDetails) (*model.Order, error)
	OrdersFn    func(context.Context, int64) ([]model.Order, error)
	OrderFn     func(context.Context, model.Actor, string) (*model.Order, error)
	AllOrdersFn func(context.Context) ([]model.Order, error)
}

// PlaceOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, items []model.CartItem, method model.PaymentMethod, details model.ShipmentDetails) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, items, method, details)
	}
	return &model.Order{ID: "order-1", UserID: userID, Items: items, PaymentMethod: method, ShipmentDetails: details, Status: model.OrderStatusPendingPayment}, nil
}

// Orders returns predefined orders for the given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: "order-1", UserID: userID}}, nil
}

// Order returns a single order visible to the actor.
func (s OrderFacadeStub) Order(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, UserID: actor.UserID}, nil
}

// AllOrders returns the staff-wide order view.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: "order-1"}}, nil
}

// WorkflowFacadeStub simulates settlement workflow commands.
type WorkflowFacadeStub struct {
	UploadFn  func(context.Context, string, io.Reader) (string, error)
	SubmitFn  func(context.Context, model.Actor, string, model.PaymentProof) (*model.Order, error)
	ApproveFn func(context.Context, model.Actor, string) (*model.Order, error)
	RejectFn  func(context.Context, model.Actor, string, string) (*model.Order, error)
	ShipFn    func(context.Context, model.Actor, string) (*model.Order, error)
	DelayFn   func(context.Context, model.Actor, string) (*model.Order, error)
	DeliverFn func(context.Context, model.Actor, string) (*model.Order, error)
}

// UploadProofImage returns a hosted URL for the uploaded screenshot.
func (s WorkflowFacadeStub) UploadProofImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, content)
	}
	return "https://img.example/" + filename, nil
}

// SubmitProof executes the configured handler or flips the default order.
func (s WorkflowFacadeStub) SubmitProof(ctx context.Context, actor model.Actor, orderID string, proof model.PaymentProof) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, actor, orderID, proof)
	}
	return &model.Order{ID: orderID, UserID: actor.UserID, Status: model.OrderStatusPendingApproval, PaymentProof: &proof}, nil
}

// ApprovePayment executes the configured handler.
func (s WorkflowFacadeStub) ApprovePayment(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusApproved}, nil
}

// RejectOrder executes the configured handler.
func (s WorkflowFacadeStub) RejectOrder(ctx context.Context, actor model.Actor, orderID, reason string) (*model.Order, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, actor, orderID, reason)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusRejected, RejectionReason: reason}, nil
}

// ShipOrder executes the configured handler.
func (s WorkflowFacadeStub) ShipOrder(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if s.ShipFn != nil {
		return s.ShipFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusShipped}, nil
}

// DelayShipment executes the configured handler.
func (s WorkflowFacadeStub) DelayShipment(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if s.DelayFn != nil {
		return s.DelayFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPendingApproval}, nil
}

// DeliverOrder executes the configured handler.
func (s WorkflowFacadeStub) DeliverOrder(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusDelivered}, nil
}

// LedgerFacadeStub simulates cashback balance operations.
type LedgerFacadeStub struct {
	BalanceFn   func(context.Context, int64) (*model.BalanceSummary, error)
	HistoryFn   func(context.Context, int64) ([]model.LedgerEntry, error)
	ReconcileFn func(context.Context, model.Actor, int64, float64, string) (*model.LedgerEntry, error)
}

// Balance returns the stored summary or default data.
func (s LedgerFacadeStub) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return &model.BalanceSummary{Current: 2500, TotalOrders: 3, TotalSpending: 90000}, nil
}

// LedgerHistory returns a preconfigured ledger.
func (s LedgerFacadeStub) LedgerHistory(ctx context.Context, userID int64) ([]model.LedgerEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.LedgerEntry{{ID: "entry-1", UserID: userID, Amount: 500, Type: model.EntryTypeCashbackCredit, CreatedAt: time.Unix(0, 0)}}, nil
}

// ReconcileBalance executes the configured handler.
func (s LedgerFacadeStub) ReconcileBalance(ctx context.Context, actor model.Actor, userID int64, balance float64, note string) (*model.LedgerEntry, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, actor, userID, balance, note)
	}
	return &model.LedgerEntry{ID: "entry-1", UserID: userID, Amount: balance, Type: model.EntryTypeCashbackCredit, Description: note}, nil
}

// NotificationFacadeStub simulates notification operations.
type NotificationFacadeStub struct {
	ListFn        func(context.Context, int64) ([]model.Notification, error)
	UnreadFn      func(context.Context, int64) (int64, error)
	AcknowledgeFn func(context.Context, int64, string) error
}

// Notifications returns the configured inbox.
func (s NotificationFacadeStub) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return []model.Notification{{ID: "notif-1", UserID: userID, Message: "Your order has been approved!"}}, nil
}

// UnreadNotifications returns the configured badge count.
func (s NotificationFacadeStub) UnreadNotifications(ctx context.Context, userID int64) (int64, error) {
	if s.UnreadFn != nil {
		return s.UnreadFn(ctx, userID)
	}
	return 1, nil
}

// AcknowledgeNotification executes the configured handler.
func (s NotificationFacadeStub) AcknowledgeNotification(ctx context.Context, userID int64, notificationID string) error {
	if s.AcknowledgeFn != nil {
		return s.AcknowledgeFn(ctx, userID, notificationID)
	}
	return nil
}

// AdminFacadeStub covers staff-only account views.
type AdminFacadeStub struct {
	UsersFn func(context.Context) ([]model.User, error)
}

// Users returns the configured account list.
func (s AdminFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Email: "user@example.com", Role: model.RoleUser}}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	WorkflowFacadeStub
	LedgerFacadeStub
	NotificationFacadeStub
	AdminFacadeStub

	DeliveryBatches [][]model.Order
	DeliveryFn      func(context.Context, time.Time, int) ([]model.Order, error)
	ConfirmFn       func(context.Context, string) error
	Confirmed       []string

	mu            sync.Mutex
	deliveryCalls int32
}

// OrdersForDelivery returns batches from the configured queue.
func (s *StorefrontFacadeStub) OrdersForDelivery(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.DeliveryFn != nil {
		return s.DeliveryFn(ctx, cutoff, limit)
	}
	call := atomic.AddInt32(&s.deliveryCalls, 1)
	if int(call) <= len(s.DeliveryBatches) {
		return s.DeliveryBatches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ConfirmDelivery records confirmation requests.
func (s *StorefrontFacadeStub) ConfirmDelivery(ctx context.Context, orderID string) error {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmed = append(s.Confirmed, orderID)
	return nil
}
