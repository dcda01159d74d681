// Package repository implements data access over database/sql with raw
// MySQL queries. Sentinel errors defined here let handlers translate
// failures into HTTP responses without string matching.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an id or slug does not resolve to a live row.
// Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned on registration with an already-used email.
// Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrSlugExists is returned when a service slug collides with an existing
// one. Handlers translate it into HTTP 409.
var ErrSlugExists = errors.New("slug already exists")

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
