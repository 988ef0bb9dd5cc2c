package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	testhelpers "github.com/naijamart/storefront/internal/test"
)

func TestCatalogWritesRequireStaff(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{}
	uc := NewCatalogUseCase(products)
	customer := model.Actor{UserID: 7, Role: model.RoleUser}
	product := &model.Product{Name: "Phone", Price: 1000}

	if _, err := uc.Create(context.Background(), customer, product); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("create: expected unauthorized, got %v", err)
	}
	if err := uc.Update(context.Background(), customer, product); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("update: expected unauthorized, got %v", err)
	}
	if err := uc.Delete(context.Background(), customer, "p1"); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("delete: expected unauthorized, got %v", err)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{}
	uc := NewCatalogUseCase(products)
	staff := model.Actor{UserID: 1, Role: model.RoleAdmin}

	cases := []struct {
		name    string
		product model.Product
	}{
		{"empty name", model.Product{Price: 100}},
		{"zero price", model.Product{Name: "Phone"}},
		{"discount above price", model.Product{Name: "Phone", Price: 100, HasDiscount: true, DiscountPrice: 150}},
		{"zero discount", model.Product{Name: "Phone", Price: 100, HasDiscount: true}},
		{"unknown state", model.Product{Name: "Phone", Price: 100, LimitedToStates: []string{"Atlantis"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), staff, &tc.product); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCatalogCRUD(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{}
	uc := NewCatalogUseCase(products)
	staff := model.Actor{UserID: 1, Role: model.RoleAdmin}

	created, err := uc.Create(context.Background(), staff, &model.Product{Name: "Phone", Price: 1000, LimitedToStates: []string{"Lagos"}})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated product ID")
	}

	created.Price = 1200
	if err := uc.Update(context.Background(), staff, created); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := uc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Price != 1200 {
		t.Fatalf("expected updated price, got %.2f", got.Price)
	}

	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one product, got %d", len(list))
	}

	if err := uc.Delete(context.Background(), staff, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := uc.Get(context.Background(), created.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
