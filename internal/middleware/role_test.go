package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammowing/lawncare-api/internal/model"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		ctxRole  interface{} // nil means JWTAuth never ran
		allowed  []string
		wantPass bool
	}{
		{name: "admin allowed", ctxRole: model.RoleAdmin, allowed: []string{model.RoleAdmin}, wantPass: true},
		{name: "customer blocked from admin route", ctxRole: model.RoleCustomer, allowed: []string{model.RoleAdmin}, wantPass: false},
		{name: "either role accepted", ctxRole: model.RoleCustomer, allowed: []string{model.RoleCustomer, model.RoleAdmin}, wantPass: true},
		{name: "missing role", ctxRole: nil, allowed: []string{model.RoleAdmin}, wantPass: false},
		{name: "unknown role", ctxRole: "superuser", allowed: []string{model.RoleAdmin}, wantPass: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.ctxRole != nil {
				c.Set(CtxRole, tt.ctxRole)
			}

			reached := false
			h := RequireRole(tt.allowed...)(func(c echo.Context) error {
				reached = true
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, h(c))

			assert.Equal(t, tt.wantPass, reached)
			if !tt.wantPass {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			}
		})
	}
}
