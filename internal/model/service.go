package model

import "time"

// Service is a lawn-care offering shown in the public catalog. Slug is unique
// and used in customer-facing URLs. Features is stored as a JSON array in a
// TEXT column.
type Service struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description,omitempty"`
	BasePrice        float64   `json:"base_price"`
	PriceUnit        string    `json:"price_unit"`
	Features         []string  `json:"features,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	IsActive         bool      `json:"is_active"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
