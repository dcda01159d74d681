package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/utils"
)

const testSecret = "middleware-test-secret"

// fakeUsers serves a fixed user set in place of the database.
type fakeUsers struct {
	users map[uint64]model.User
}

func (f *fakeUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func runJWTAuth(t *testing.T, authHeader string, users UserSource) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := JWTAuth(testSecret, users)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, reached
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	users := &fakeUsers{users: map[uint64]model.User{
		5: {ID: 5, Email: "c@example.com", Role: model.RoleCustomer, IsActive: true},
	}}
	signed, err := utils.NewAccessToken(testSecret, 5, "c@example.com", model.RoleCustomer, 30)
	require.NoError(t, err)

	rec, reached := runJWTAuth(t, "Bearer "+signed.Token, users)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthPopulatesContext(t *testing.T) {
	users := &fakeUsers{users: map[uint64]model.User{
		9: {ID: 9, Email: "a@example.com", Role: model.RoleAdmin, IsActive: true},
	}}
	signed, err := utils.NewAccessToken(testSecret, 9, "a@example.com", model.RoleAdmin, 30)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed.Token)
	c := e.NewContext(req, httptest.NewRecorder())

	h := JWTAuth(testSecret, users)(func(c echo.Context) error {
		assert.Equal(t, uint64(9), c.Get(CtxUserID))
		assert.Equal(t, "a@example.com", c.Get(CtxEmail))
		assert.Equal(t, model.RoleAdmin, c.Get(CtxRole))
		return nil
	})
	require.NoError(t, h(c))
}

func TestJWTAuthRejections(t *testing.T) {
	active := &fakeUsers{users: map[uint64]model.User{
		5: {ID: 5, Email: "c@example.com", Role: model.RoleCustomer, IsActive: true},
	}}
	inactive := &fakeUsers{users: map[uint64]model.User{
		5: {ID: 5, Email: "c@example.com", Role: model.RoleCustomer, IsActive: false},
	}}
	empty := &fakeUsers{users: map[uint64]model.User{}}

	access, err := utils.NewAccessToken(testSecret, 5, "c@example.com", model.RoleCustomer, 30)
	require.NoError(t, err)
	refresh, err := utils.NewRefreshToken(testSecret, 5, "c@example.com", model.RoleCustomer, 7)
	require.NoError(t, err)
	otherKey, err := utils.NewAccessToken("some-other-secret", 5, "c@example.com", model.RoleCustomer, 30)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		users  UserSource
	}{
		{name: "no header", header: "", users: active},
		{name: "not bearer", header: "Basic abc123", users: active},
		{name: "garbage token", header: "Bearer junk", users: active},
		{name: "wrong signing key", header: "Bearer " + otherKey.Token, users: active},
		{name: "refresh token used as access", header: "Bearer " + refresh.Token, users: active},
		{name: "unknown user", header: "Bearer " + access.Token, users: empty},
		{name: "deactivated user", header: "Bearer " + access.Token, users: inactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, reached := runJWTAuth(t, tt.header, tt.users)
			assert.False(t, reached)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status_code":401`)
		})
	}
}
