package repository

import (
	"context"

	"github.com/naijamart/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalogue.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}
