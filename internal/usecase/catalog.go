package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/domain/repository"
)

// CatalogUseCase manages the product catalogue.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns all products, newest first.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get fetches a single product.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create adds a product to the catalogue. Staff only.
func (u *CatalogUseCase) Create(ctx context.Context, actor model.Actor, product *model.Product) (*model.Product, error) {
	if !actor.IsStaff() {
		return nil, domainErrors.ErrUnauthorized
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// Update replaces product fields. Staff only. Existing order snapshots are
// unaffected.
func (u *CatalogUseCase) Update(ctx context.Context, actor model.Actor, product *model.Product) error {
	if !actor.IsStaff() {
		return domainErrors.ErrUnauthorized
	}
	if err := validateProduct(product); err != nil {
		return err
	}
	return u.products.Update(ctx, product)
}

// Delete removes a product from the catalogue. Staff only.
func (u *CatalogUseCase) Delete(ctx context.Context, actor model.Actor, id string) error {
	if !actor.IsStaff() {
		return domainErrors.ErrUnauthorized
	}
	return u.products.Delete(ctx, id)
}

func validateProduct(product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: product price must be positive", domainErrors.ErrValidation)
	}
	if product.HasDiscount && (product.DiscountPrice <= 0 || product.DiscountPrice >= product.Price) {
		return fmt.Errorf("%w: discount price must be positive and below the base price", domainErrors.ErrValidation)
	}
	for _, state := range product.LimitedToStates {
		if !model.IsNigerianState(state) {
			return fmt.Errorf("%w: unknown state %q", domainErrors.ErrValidation, state)
		}
	}
	return nil
}
