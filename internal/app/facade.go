package app

import (
	"context"
	"io"
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/usecase"
)

// ProofImageUploader stores payment proof screenshots on an external host.
type ProofImageUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// StorefrontFacade is the single entry point the HTTP layer and the delivery
// worker talk to. It fans out to the underlying use cases.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	checkout *usecase.CheckoutUseCase
	workflow *usecase.WorkflowUseCase
	ledger   *usecase.LedgerUseCase
	notifier *usecase.NotifierUseCase
	images   ProofImageUploader
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	checkout *usecase.CheckoutUseCase,
	workflow *usecase.WorkflowUseCase,
	ledger *usecase.LedgerUseCase,
	notifier *usecase.NotifierUseCase,
	images ProofImageUploader,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:     auth,
		catalog:  catalog,
		checkout: checkout,
		workflow: workflow,
		ledger:   ledger,
		notifier: notifier,
		images:   images,
	}
}

// --- auth ---

func (f *StorefrontFacade) Register(ctx context.Context, email, fullName, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, fullName, password)
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *StorefrontFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

// --- catalogue ---

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, actor model.Actor, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, actor, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, actor model.Actor, product *model.Product) error {
	return f.catalog.Update(ctx, actor, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, actor model.Actor, id string) error {
	return f.catalog.Delete(ctx, actor, id)
}

// --- orders ---

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, userID int64, items []model.CartItem, method model.PaymentMethod, details model.ShipmentDetails) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID, items, method, details)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.checkout.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	return f.checkout.GetForActor(ctx, actor, orderID)
}

func (f *StorefrontFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.checkout.ListAll(ctx)
}

// --- settlement workflow ---

func (f *StorefrontFacade) UploadProofImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	return f.images.Upload(ctx, filename, content)
}

func (f *StorefrontFacade) SubmitProof(ctx context.Context, actor model.Actor, orderID string, proof model.PaymentProof) (*model.Order, error) {
	return f.workflow.SubmitProof(ctx, actor, orderID, proof)
}

func (f *StorefrontFacade) ApprovePayment(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	return f.workflow.Approve(ctx, actor, orderID)
}

func (f *StorefrontFacade) RejectOrder(ctx context.Context, actor model.Actor, orderID, reason string) (*model.Order, error) {
	return f.workflow.Reject(ctx, actor, orderID, reason)
}

func (f *StorefrontFacade) ShipOrder(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	return f.workflow.Ship(ctx, actor, orderID)
}

func (f *StorefrontFacade) DelayShipment(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	return f.workflow.Delay(ctx, actor, orderID)
}

func (f *StorefrontFacade) DeliverOrder(ctx context.Context, actor model.Actor, orderID string) (*model.Order, error) {
	return f.workflow.Deliver(ctx, actor, orderID)
}

// --- worker entry points ---

func (f *StorefrontFacade) OrdersForDelivery(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return f.workflow.OrdersForDelivery(ctx, cutoff, limit)
}

func (f *StorefrontFacade) ConfirmDelivery(ctx context.Context, orderID string) error {
	_, err := f.workflow.Deliver(ctx, model.SystemActor, orderID)
	return err
}

// --- cashback ledger ---

func (f *StorefrontFacade) Balance(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	return f.ledger.Summary(ctx, userID)
}

func (f *StorefrontFacade) LedgerHistory(ctx context.Context, userID int64) ([]model.LedgerEntry, error) {
	return f.ledger.History(ctx, userID)
}

func (f *StorefrontFacade) ReconcileBalance(ctx context.Context, actor model.Actor, userID int64, balance float64, note string) (*model.LedgerEntry, error) {
	return f.ledger.Reconcile(ctx, actor, userID, balance, note)
}

// --- notifications ---

func (f *StorefrontFacade) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	return f.notifier.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) UnreadNotifications(ctx context.Context, userID int64) (int64, error) {
	return f.notifier.UnreadCount(ctx, userID)
}

func (f *StorefrontFacade) AcknowledgeNotification(ctx context.Context, userID int64, notificationID string) error {
	return f.notifier.Acknowledge(ctx, userID, notificationID)
}
