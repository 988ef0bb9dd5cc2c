package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	pkgAuth "github.com/naijamart/storefront/internal/pkg/auth"
	testhelpers "github.com/naijamart/storefront/internal/test"
	"github.com/naijamart/storefront/internal/usecase"
)

type uploaderStub struct {
	url string
	err error
}

func (s uploaderStub) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url + filename, nil
}

type facadeFixture struct {
	facade        *StorefrontFacade
	users         *testhelpers.UserRepositoryStub
	orders        *testhelpers.OrderRepositoryStub
	products      *testhelpers.ProductRepositoryStub
	ledger        *testhelpers.LedgerRepositoryStub
	notifications *testhelpers.NotificationRepositoryStub
	publisher     *testhelpers.PublisherStub
}

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	auth := usecase.NewAuthUseCase(users, pkgAuth.NewBcryptHasher(4), pkgAuth.NewJWTStrategy("test-secret", pkgAuth.Options{}))

	products := &testhelpers.ProductRepositoryStub{}
	catalog := usecase.NewCatalogUseCase(products)

	orders := &testhelpers.OrderRepositoryStub{}
	checkout := usecase.NewCheckoutUseCase(orders, products, users)

	notifications := &testhelpers.NotificationRepositoryStub{}
	publisher := &testhelpers.PublisherStub{}
	notifier := usecase.NewNotifierUseCase(notifications, publisher, logger)

	workflowRepo := &testhelpers.WorkflowRepositoryStub{}
	workflow := usecase.NewWorkflowUseCase(orders, workflowRepo, notifier, publisher, logger)

	ledgerRepo := &testhelpers.LedgerRepositoryStub{Balances: map[int64]float64{}}
	ledger := usecase.NewLedgerUseCase(ledgerRepo, users)

	facade := NewStorefrontFacade(auth, catalog, checkout, workflow, ledger, notifier, uploaderStub{url: "https://img.example/"})
	return &facadeFixture{
		facade:        facade,
		users:         users,
		orders:        orders,
		products:      products,
		ledger:        ledgerRepo,
		notifications: notifications,
		publisher:     publisher,
	}
}

func TestStorefrontFacadeAuth(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	user, token, err := f.facade.Register(ctx, "ada@example.com", "Ada Obi", "password123")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token == "" || user.Email != "ada@example.com" {
		t.Fatalf("unexpected registration result: %+v token=%q", user, token)
	}

	_, loginToken, err := f.facade.Authenticate(ctx, "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, role, err := f.facade.ParseToken(loginToken)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != user.ID || role != model.RoleUser {
		t.Fatalf("unexpected identity %d/%s", id, role)
	}

	profile, err := f.facade.Profile(ctx, user.ID)
	if err != nil || profile.Email != "ada@example.com" {
		t.Fatalf("unexpected profile %+v err=%v", profile, err)
	}

	all, err := f.facade.Users(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one account, got %v err=%v", all, err)
	}
}

func TestStorefrontFacadeCatalog(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	staff := model.Actor{UserID: 1, Role: model.RoleAdmin}

	created, err := f.facade.CreateProduct(ctx, staff, &model.Product{Name: "Air Fryer", Price: 45000})
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}

	listed, err := f.facade.Products(ctx)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one product, got %v err=%v", listed, err)
	}

	got, err := f.facade.Product(ctx, created.ID)
	if err != nil || got.Name != "Air Fryer" {
		t.Fatalf("unexpected product %+v err=%v", got, err)
	}

	created.Price = 48000
	if err := f.facade.UpdateProduct(ctx, staff, created); err != nil {
		t.Fatalf("update product returned error: %v", err)
	}
	if err := f.facade.DeleteProduct(ctx, staff, created.ID); err != nil {
		t.Fatalf("delete product returned error: %v", err)
	}
	if _, err := f.facade.Product(ctx, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestStorefrontFacadeOrders(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	buyer := f.users.Seed(&model.User{Email: "ada@example.com", Role: model.RoleUser})
	f.products.Seed(&model.Product{ID: "prod-1", Name: "Air Fryer", Price: 45000})

	details := model.ShipmentDetails{
		Phone:   "+2348012345678",
		Address: "12 Allen Avenue, Ikeja",
		State:   "Lagos",
	}
	order, err := f.facade.PlaceOrder(ctx, buyer.ID, []model.CartItem{{ProductID: "prod-1", Quantity: 2}}, model.PaymentMethodDirect, details)
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if order.TotalAmount != 90000 || order.Status != model.OrderStatusPendingPayment {
		t.Fatalf("unexpected order %+v", order)
	}

	listed, err := f.facade.Orders(ctx, buyer.ID)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	got, err := f.facade.Order(ctx, model.Actor{UserID: buyer.ID, Role: model.RoleUser}, order.ID)
	if err != nil || got.ID != order.ID {
		t.Fatalf("unexpected order read %+v err=%v", got, err)
	}

	all, err := f.facade.AllOrders(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected one order in admin view, got %v err=%v", all, err)
	}
}

func TestStorefrontFacadeWorkflow(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	buyer := f.users.Seed(&model.User{Email: "ada@example.com", Role: model.RoleUser})
	order := f.orders.Seed(&model.Order{UserID: buyer.ID, Status: model.OrderStatusPendingPayment, PaymentMethod: model.PaymentMethodDirect})

	url, err := f.facade.UploadProofImage(ctx, "receipt.png", strings.NewReader("png-bytes"))
	if err != nil || url != "https://img.example/receipt.png" {
		t.Fatalf("unexpected upload result %q err=%v", url, err)
	}

	submitted, err := f.facade.SubmitProof(ctx, model.Actor{UserID: buyer.ID, Role: model.RoleUser}, order.ID, model.PaymentProof{SenderName: "Ada Obi", ImageURL: url})
	if err != nil {
		t.Fatalf("submit proof returned error: %v", err)
	}
	if submitted.Status != model.OrderStatusPendingApproval {
		t.Fatalf("unexpected status %s", submitted.Status)
	}

	staff := model.Actor{UserID: 99, Role: model.RoleAdmin}
	approved, err := f.facade.ApprovePayment(ctx, staff, order.ID)
	if err != nil || approved.Status != model.OrderStatusApproved {
		t.Fatalf("unexpected approval %+v err=%v", approved, err)
	}

	shipped, err := f.facade.ShipOrder(ctx, staff, order.ID)
	if err != nil || shipped.Status != model.OrderStatusShipped {
		t.Fatalf("unexpected shipment %+v err=%v", shipped, err)
	}

	if err := f.facade.ConfirmDelivery(ctx, order.ID); err != nil {
		t.Fatalf("confirm delivery returned error: %v", err)
	}

	if len(f.publisher.OrderEvents) == 0 {
		t.Fatal("expected order status events to be published")
	}
}

func TestStorefrontFacadeOrdersForDelivery(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	cutoff := time.Now()
	f.orders.Seed(&model.Order{ID: "order-1", Status: model.OrderStatusShipped, UpdatedAt: cutoff.Add(-time.Hour)})
	f.orders.Seed(&model.Order{ID: "order-2", Status: model.OrderStatusShipped, UpdatedAt: cutoff.Add(time.Hour)})

	batch, err := f.facade.OrdersForDelivery(ctx, cutoff, 10)
	if err != nil {
		t.Fatalf("orders for delivery returned error: %v", err)
	}
	if len(batch) != 1 || batch[0].ID != "order-1" {
		t.Fatalf("expected only the ripened order, got %v", batch)
	}
}

func TestStorefrontFacadeLedger(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	user := f.users.Seed(&model.User{Email: "ada@example.com", CashbackBalance: 2500, TotalOrders: 3, TotalSpending: 90000})

	summary, err := f.facade.Balance(ctx, user.ID)
	if err != nil {
		t.Fatalf("balance returned error: %v", err)
	}
	if summary.Current != 2500 || summary.TotalOrders != 3 || summary.TotalSpending != 90000 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	staff := model.Actor{UserID: 99, Role: model.RoleAdmin}
	entry, err := f.facade.ReconcileBalance(ctx, staff, user.ID, 4000, "Support adjustment")
	if err != nil {
		t.Fatalf("reconcile returned error: %v", err)
	}
	if entry.Type != model.EntryTypeCashbackCredit || entry.Amount != 4000 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if _, err := f.facade.ReconcileBalance(ctx, model.Actor{UserID: user.ID, Role: model.RoleUser}, user.ID, 0, ""); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for customer reconcile, got %v", err)
	}

	history, err := f.facade.LedgerHistory(ctx, user.ID)
	if err != nil || len(history) != 1 {
		t.Fatalf("expected one ledger entry, got %v err=%v", history, err)
	}
}

func TestStorefrontFacadeNotifications(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	created, err := f.notifications.Create(ctx, 7, "Your order has been approved!", model.NotificationSuccess)
	if err != nil {
		t.Fatalf("seed notification returned error: %v", err)
	}

	listed, err := f.facade.Notifications(ctx, 7)
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one notification, got %v err=%v", listed, err)
	}

	count, err := f.facade.UnreadNotifications(ctx, 7)
	if err != nil || count != 1 {
		t.Fatalf("expected one unread, got %d err=%v", count, err)
	}

	if err := f.facade.AcknowledgeNotification(ctx, 8, created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found when acknowledging another user's notification, got %v", err)
	}
	if err := f.facade.AcknowledgeNotification(ctx, 7, created.ID); err != nil {
		t.Fatalf("acknowledge returned error: %v", err)
	}
	count, err = f.facade.UnreadNotifications(ctx, 7)
	if err != nil || count != 0 {
		t.Fatalf("expected zero unread after acknowledge, got %d err=%v", count, err)
	}
}
