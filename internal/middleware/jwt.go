package middleware // middleware contains reusable HTTP middleware functions

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/utils"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "user_email"
	CtxRole   = "role"
)

// UserSource loads a user record by id. *repository.UserRepo satisfies it;
// tests substitute a fake.
type UserSource interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// JWTAuth returns an Echo middleware that validates a Bearer access token,
// loads the subject from the credential store and injects the identity into
// the request context. The token must carry kind="access"; refresh tokens
// are rejected here. A token for a deleted or deactivated account is treated
// the same as an invalid one.
func JWTAuth(secret string, users UserSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthenticated(c, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseToken(secret, raw, utils.KindAccess)
			if err != nil {
				return unauthenticated(c, "invalid token")
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			u, err := users.GetByID(ctx, claims.UserID)
			if err != nil || !u.IsActive {
				return unauthenticated(c, "invalid token")
			}

			c.Set(CtxUserID, u.ID)
			c.Set(CtxEmail, u.Email)
			c.Set(CtxRole, u.Role)
			return next(c)
		}
	}
}

func unauthenticated(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"detail":      detail,
		"status_code": http.StatusUnauthorized,
	})
}
