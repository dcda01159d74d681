package model

import "time"

// Quote request statuses.
const (
	QuotePending  = "pending"
	QuoteReviewed = "reviewed"
	QuoteQuoted   = "quoted"
	QuoteAccepted = "accepted"
	QuoteRejected = "rejected"
)

// QuoteStatuses lists every status in presentation order, used for the admin
// stats breakdown.
var QuoteStatuses = []string{QuotePending, QuoteReviewed, QuoteQuoted, QuoteAccepted, QuoteRejected}

// ValidQuoteStatus reports whether s is a known quote status.
func ValidQuoteStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Quote mirrors the `quotes` table. Requests arrive from the public site, so
// UserID is nullable; logged-in customers get their id attached and may later
// read their own quote. ReviewedAt is stamped once, the first time the status
// leaves pending.
type Quote struct {
	ID                 uint64     `json:"id"`
	UserID             *uint64    `json:"user_id,omitempty"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	PropertySize       *float64   `json:"property_size,omitempty"` // square meters
	PropertyType       string     `json:"property_type,omitempty"`
	ServiceType        string     `json:"service_type"`
	ServiceFrequency   string     `json:"service_frequency,omitempty"`
	PreferredStartDate *time.Time `json:"preferred_start_date,omitempty"`
	AdditionalDetails  string     `json:"additional_details,omitempty"`
	Status             string     `json:"status"`
	QuotedPrice        *float64   `json:"quoted_price,omitempty"`
	QuoteNotes         string     `json:"quote_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
}
