package model

import "time"

// Testimonial is a customer review. Public submissions start unapproved and
// unfeatured; only approved testimonials appear in public listings.
// ApprovedAt is stamped once on first approval.
type Testimonial struct {
	ID               uint64     `json:"id"`
	UserID           *uint64    `json:"user_id,omitempty"`
	CustomerName     string     `json:"customer_name"`
	CustomerEmail    string     `json:"customer_email,omitempty"`
	CustomerLocation string     `json:"customer_location,omitempty"`
	Rating           float64    `json:"rating"` // 1-5 stars
	Title            string     `json:"title,omitempty"`
	Content          string     `json:"content"`
	ServiceType      string     `json:"service_type,omitempty"`
	IsApproved       bool       `json:"is_approved"`
	IsFeatured       bool       `json:"is_featured"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
}
