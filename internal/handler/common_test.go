package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ammowing/lawncare-api/internal/middleware"
	"github.com/ammowing/lawncare-api/internal/model"
)

func testContext(userID uint64, role string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != "" {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, role)
	}
	return c
}

func TestCanAccessOwned(t *testing.T) {
	owner := uint64(10)
	other := uint64(99)

	tests := []struct {
		name    string
		userID  uint64
		role    string
		ownerID *uint64
		want    bool
	}{
		{name: "owner reads own resource", userID: owner, role: model.RoleCustomer, ownerID: &owner, want: true},
		{name: "other customer blocked", userID: other, role: model.RoleCustomer, ownerID: &owner, want: false},
		{name: "admin reads anything", userID: other, role: model.RoleAdmin, ownerID: &owner, want: true},
		{name: "ownerless resource blocked for customer", userID: owner, role: model.RoleCustomer, ownerID: nil, want: false},
		{name: "ownerless resource open to admin", userID: other, role: model.RoleAdmin, ownerID: nil, want: true},
		{name: "unauthenticated blocked", userID: 0, role: "", ownerID: &owner, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(tt.userID, tt.role)
			assert.Equal(t, tt.want, canAccessOwned(c, tt.ownerID))
		})
	}
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantSkip: 0, wantLimit: 100},
		{name: "explicit", query: "skip=20&limit=10", wantSkip: 20, wantLimit: 10},
		{name: "negative skip clamped", query: "skip=-5&limit=10", wantSkip: 0, wantLimit: 10},
		{name: "oversized limit clamped", query: "limit=5000", wantSkip: 0, wantLimit: 100},
		{name: "zero limit falls back", query: "limit=0", wantSkip: 0, wantLimit: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			skip, limit := pagination(c)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
