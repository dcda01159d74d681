package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated user
// has one of the given roles. It assumes JWTAuth has already stored the role
// in the context; a missing or unknown role is rejected with 403. Role
// matching is exact: there is no hierarchy beyond the customer/admin split.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"detail":      "forbidden",
					"status_code": http.StatusForbidden,
				})
			}
			return next(c)
		}
	}
}
