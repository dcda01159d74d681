package model

import "time"

// Contact is a contact-form submission. ReadAt is stamped the first time an
// admin opens the message; RepliedAt when it is marked replied.
type Contact struct {
	ID          uint64     `json:"id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	ServiceType string     `json:"service_type,omitempty"`
	Message     string     `json:"message"`
	IsRead      bool       `json:"is_read"`
	IsReplied   bool       `json:"is_replied"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	RepliedAt   *time.Time `json:"replied_at,omitempty"`
}
