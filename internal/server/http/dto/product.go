package dto

import (
	"time"

	"github.com/naijamart/storefront/internal/domain/model"
)

// ProductRequest describes the create/update payload for catalogue items.
type ProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Images          []string `json:"images"`
	Price           float64  `json:"price"`
	DiscountPrice   float64  `json:"discount_price"`
	HasDiscount     bool     `json:"has_discount"`
	FullDetails     string   `json:"full_details"`
	ExternalLinks   []string `json:"external_links"`
	LimitedToStates []string `json:"limited_to_states"`
}

// ProductResponse is the public catalogue item shape.
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Images          []string  `json:"images"`
	Price           float64   `json:"price"`
	DiscountPrice   float64   `json:"discount_price,omitempty"`
	HasDiscount     bool      `json:"has_discount"`
	EffectivePrice  float64   `json:"effective_price"`
	FullDetails     string    `json:"full_details,omitempty"`
	ExternalLinks   []string  `json:"external_links,omitempty"`
	LimitedToStates []string  `json:"limited_to_states,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToProduct maps the request onto a domain product.
func (r ProductRequest) ToProduct(id string) *model.Product {
	return &model.Product{
		ID:              id,
		Name:            r.Name,
		Description:     r.Description,
		Images:          r.Images,
		Price:           r.Price,
		DiscountPrice:   r.DiscountPrice,
		HasDiscount:     r.HasDiscount,
		FullDetails:     r.FullDetails,
		ExternalLinks:   r.ExternalLinks,
		LimitedToStates: r.LimitedToStates,
	}
}

// ToProductResponse maps a domain product onto the wire shape.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Images:          p.Images,
		Price:           p.Price,
		DiscountPrice:   p.DiscountPrice,
		HasDiscount:     p.HasDiscount,
		EffectivePrice:  p.EffectivePrice(),
		FullDetails:     p.FullDetails,
		ExternalLinks:   p.ExternalLinks,
		LimitedToStates: p.LimitedToStates,
		CreatedAt:       p.CreatedAt,
	}
}
