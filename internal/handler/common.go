// Package handler implements the HTTP handlers for the lawn-care API. Every
// handler translates repository sentinel errors into the {detail,
// status_code} error body used across the service.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/middleware"
	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/utils"
	"github.com/ammowing/lawncare-api/internal/validate"
)

// dbTimeout bounds every persistence call made from a handler.
const dbTimeout = 5 * time.Second

// apiError writes the uniform error body.
func apiError(c echo.Context, status int, detail string) error {
	return c.JSON(status, echo.Map{"detail": detail, "status_code": status})
}

// validationError writes a 422 with the per-field violation list.
func validationError(c echo.Context, errs []validate.FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, echo.Map{
		"detail":      errs,
		"status_code": http.StatusUnprocessableEntity,
	})
}

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// pagination reads skip/limit query params with the listing defaults.
func pagination(c echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 100
	}
	return skip, limit
}

// currentUserID returns the authenticated user's id, when JWTAuth ran.
func currentUserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(middleware.CtxUserID).(uint64)
	return id, ok
}

// isAdmin reports whether the authenticated caller has the admin role.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role == model.RoleAdmin
}

// canAccessOwned applies the owner-or-admin policy: admins always pass,
// otherwise the caller must own the resource. A resource without an owner is
// admin-only.
func canAccessOwned(c echo.Context, ownerID *uint64) bool {
	if isAdmin(c) {
		return true
	}
	uid, ok := currentUserID(c)
	if !ok || ownerID == nil {
		return false
	}
	return *ownerID == uid
}

// optionalClaims parses a bearer token on a public route without requiring
// one. Used to attach ownership to public submissions from logged-in
// customers and to let admins preview unapproved content. The claims are
// trusted because we signed them; no user load happens here.
func optionalClaims(c echo.Context, secret string) *utils.TokenClaims {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil
	}
	claims, err := utils.ParseToken(secret, strings.TrimPrefix(auth, "Bearer "), utils.KindAccess)
	if err != nil {
		return nil
	}
	return claims
}
