package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/naijamart/storefront/internal/domain/errors"
	"github.com/naijamart/storefront/internal/domain/model"
)

const productColumns = `id, name, description, images, price, discount_price, has_discount,
        full_details, external_links, limited_to_states, created_at`

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p         model.Product
		imagesRaw []byte
		linksRaw  []byte
		statesRaw []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &imagesRaw, &p.Price, &p.DiscountPrice,
		&p.HasDiscount, &p.FullDetails, &linksRaw, &statesRaw, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(imagesRaw, &p.Images); err != nil {
		return nil, fmt.Errorf("decode product images: %w", err)
	}
	if err := json.Unmarshal(linksRaw, &p.ExternalLinks); err != nil {
		return nil, fmt.Errorf("decode product links: %w", err)
	}
	if err := json.Unmarshal(statesRaw, &p.LimitedToStates); err != nil {
		return nil, fmt.Errorf("decode product states: %w", err)
	}
	return &p, nil
}

func encodeProductLists(p *model.Product) (images, links, states []byte, err error) {
	if images, err = json.Marshal(sliceOrEmpty(p.Images)); err != nil {
		return nil, nil, nil, err
	}
	if links, err = json.Marshal(sliceOrEmpty(p.ExternalLinks)); err != nil {
		return nil, nil, nil, err
	}
	if states, err = json.Marshal(sliceOrEmpty(p.LimitedToStates)); err != nil {
		return nil, nil, nil, err
	}
	return images, links, states, nil
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	images, links, states, err := encodeProductLists(product)
	if err != nil {
		return nil, err
	}

	const query = `INSERT INTO products (id, name, description, images, price, discount_price, has_discount, full_details, external_links, limited_to_states)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING created_at`
	err = r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, images, product.Price,
		product.DiscountPrice, product.HasDiscount, product.FullDetails, links, states,
	).Scan(&product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	images, links, states, err := encodeProductLists(product)
	if err != nil {
		return err
	}

	const query = `UPDATE products
                   SET name=$1, description=$2, images=$3, price=$4, discount_price=$5,
                       has_discount=$6, full_details=$7, external_links=$8, limited_to_states=$9
                   WHERE id=$10`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.Name, product.Description, images, product.Price, product.DiscountPrice,
		product.HasDiscount, product.FullDetails, links, states, product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
