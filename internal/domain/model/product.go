package model

import "time"

// Product is a catalogue item. Orders keep their own item snapshots, so
// editing or deleting a product never rewrites past orders.
type Product struct {
	ID              string
	Name            string
	Description     string
	Images          []string
	Price           float64
	DiscountPrice   float64
	HasDiscount     bool
	FullDetails     string
	ExternalLinks   []string
	LimitedToStates []string
	CreatedAt       time.Time
}

// EffectivePrice returns the discounted price when a discount is active.
func (p *Product) EffectivePrice() float64 {
	if p.HasDiscount && p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// AvailableIn reports whether the product can be shipped to the given state.
// An empty restriction list means nationwide availability.
func (p *Product) AvailableIn(state string) bool {
	if len(p.LimitedToStates) == 0 {
		return true
	}
	for _, s := range p.LimitedToStates {
		if s == state {
			return true
		}
	}
	return false
}
