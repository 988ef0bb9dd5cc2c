package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	testhelpers "github.com/naijamart/storefront/internal/test"
)

func newCheckoutFixture() (*CheckoutUseCase, *testhelpers.OrderRepositoryStub, *testhelpers.ProductRepositoryStub, *testhelpers.UserRepositoryStub) {
	orders := &testhelpers.OrderRepositoryStub{}
	products := &testhelpers.ProductRepositoryStub{}
	users := testhelpers.NewUserRepositoryStub()
	return NewCheckoutUseCase(orders, products, users), orders, products, users
}

func lagosShipment() model.ShipmentDetails {
	return model.ShipmentDetails{
		Phone:   "+2348012345678",
		Address: "12 Allen Avenue, Ikeja",
		State:   "Lagos",
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	uc, _, _, _ := newCheckoutFixture()
	_, err := uc.PlaceOrder(context.Background(), 1, nil, model.PaymentMethodDirect, lagosShipment())
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderInvalidShipment(t *testing.T) {
	uc, _, products, users := newCheckoutFixture()
	users.Seed(&model.User{ID: 1, Email: "ada@example.com"})
	products.Seed(&model.Product{ID: "p1", Name: "Phone", Price: 1000})
	items := []model.CartItem{{ProductID: "p1", Quantity: 1}}

	cases := []struct {
		name    string
		details model.ShipmentDetails
	}{
		{"missing phone", model.ShipmentDetails{Address: "a", State: "Lagos"}},
		{"missing address", model.ShipmentDetails{Phone: "p", State: "Lagos"}},
		{"missing state", model.ShipmentDetails{Phone: "p", Address: "a"}},
		{"unknown state", model.ShipmentDetails{Phone: "p", Address: "a", State: "Atlantis"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.PlaceOrder(context.Background(), 1, items, model.PaymentMethodDirect, tc.details); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPlaceOrderUnknownPaymentMethod(t *testing.T) {
	uc, _, products, users := newCheckoutFixture()
	users.Seed(&model.User{ID: 1, Email: "ada@example.com"})
	products.Seed(&model.Product{ID: "p1", Name: "Phone", Price: 1000})

	_, err := uc.PlaceOrder(context.Background(), 1, []model.CartItem{{ProductID: "p1", Quantity: 1}}, model.PaymentMethod("barter"), lagosShipment())
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderSnapshotsDiscountedPrice(t *testing.T) {
	uc, _, products, users := newCheckoutFixture()
	users.Seed(&model.User{ID: 1, Email: "ada@example.com"})
	products.Seed(&model.Product{
		ID:            "p1",
		Name:          "Phone",
		Price:         120000,
		DiscountPrice: 99000,
		HasDiscount:   true,
		Images:        []string{"https://img.example/p1.jpg"},
	})
	products.Seed(&model.Product{ID: "p2", Name: "Case", Price: 3500})

	order, err := uc.PlaceOrder(context.Background(), 1, []model.CartItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}, model.PaymentMethodDirect, lagosShipment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPendingPayment {
		t.Fatalf("expected pending_payment, got %s", order.Status)
	}
	if want := 99000.0 + 2*3500.0; order.TotalAmount != want {
		t.Fatalf("expected total %.2f, got %.2f", want, order.TotalAmount)
	}
	if order.Items[0].Price != 99000 {
		t.Fatalf("expected discounted snapshot price, got %.2f", order.Items[0].Price)
	}
	if order.Items[0].Image != "https://img.example/p1.jpg" {
		t.Fatalf("expected first image snapshotted, got %q", order.Items[0].Image)
	}
	if order.UserEmail != "ada@example.com" {
		t.Fatalf("expected user email snapshot, got %q", order.UserEmail)
	}
}

func TestPlaceOrderSnapshotSurvivesProductEdit(t *testing.T) {
	uc, _, products, users := newCheckoutFixture()
	users.Seed(&model.User{ID: 1, Email: "ada@example.com"})
	product := products.Seed(&model.Product{ID: "p1", Name: "Phone", Price: 1000})

	order, err := uc.PlaceOrder(context.Background(), 1, []model.CartItem{{ProductID: "p1", Quantity: 1}}, model.PaymentMethodDirect, lagosShipment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	product.Price = 5000
	product.Name = "Phone Pro"

	if order.Items[0].Price != 1000 || order.Items[0].Name != "Phone" {
		t.Fatalf("snapshot changed after product edit: %+v", order.Items[0])
	}
}

func TestPlaceOrderRejectsRestrictedState(t *testing.T) {
	uc, _, products, users := newCheckoutFixture()
	users.Seed(&model.User{ID: 1, Email: "ada@example.com"})
	products.Seed(&model.Product{ID: "p1", Name: "Generator", Price: 1000, LimitedToStates: []string{"Abuja"}})

	_, err := uc.PlaceOrder(context.Background(), 1, []model.CartItem{{ProductID: "p1", Quantity: 1}}, model.PaymentMethodDirect, lagosShipment())
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderCashbackPrecheck(t *testing.T) {
	uc, _, products, users := newCheckoutFixture()
	users.Seed(&model.User{ID: 1, Email: "ada@example.com", CashbackBalance: 500})
	products.Seed(&model.Product{ID: "p1", Name: "Phone", Price: 1000})
	items := []model.CartItem{{ProductID: "p1", Quantity: 1}}

	if _, err := uc.PlaceOrder(context.Background(), 1, items, model.PaymentMethodCashback, lagosShipment()); !errors.Is(err, domainErrors.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	// A mixed order with the same short balance is fine: the shortfall is
	// covered by a transfer.
	if _, err := uc.PlaceOrder(context.Background(), 1, items, model.PaymentMethodMixed, lagosShipment()); err != nil {
		t.Fatalf("mixed order should pass the precheck, got %v", err)
	}
}

func TestGetForActorOwnership(t *testing.T) {
	uc, orders, _, _ := newCheckoutFixture()
	orders.Seed(&model.Order{ID: "order-1", UserID: 7})

	if _, err := uc.GetForActor(context.Background(), model.Actor{UserID: 7, Role: model.RoleUser}, "order-1"); err != nil {
		t.Fatalf("owner should read own order, got %v", err)
	}
	if _, err := uc.GetForActor(context.Background(), model.Actor{UserID: 2, Role: model.RoleAdmin}, "order-1"); err != nil {
		t.Fatalf("staff should read any order, got %v", err)
	}
	if _, err := uc.GetForActor(context.Background(), model.Actor{UserID: 9, Role: model.RoleUser}, "order-1"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for foreign customer, got %v", err)
	}
}
