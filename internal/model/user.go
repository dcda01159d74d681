package model

import "time"

// Roles understood by the authorization layer. There is no hierarchy beyond
// the two-tier split: admins pass every ownership check, customers only pass
// for resources they own.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents an application user record as stored in the `users` table.
// Accounts are never hard-deleted; deactivation clears IsActive and the auth
// middleware rejects tokens for inactive users. The password hash never
// leaves this struct via JSON.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Email        – unique email address, stored lowercase.
//	PasswordHash – bcrypt hashed password.
//	FullName     – display name collected at registration.
//	Phone        – optional contact number.
//	Role         – "customer" or "admin".
//	IsActive     – whether the account may authenticate.
//	IsVerified   – whether the email address has been verified.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
//	LastLogin    – time of the most recent successful login (nullable).
type User struct {
	ID           uint64     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	IsVerified   bool       `json:"is_verified"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// RefreshToken models an entry in the `refresh_tokens` table. The signed
// token itself is not stored; only its SHA-256 hash, so a leaked table cannot
// be replayed into new sessions.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owner of the token.
//	TokenHash – SHA-256 hex digest of the signed token.
//	ExpiresAt – expiration timestamp.
//	RevokedAt – when the token was revoked (null if still active).
//	CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
