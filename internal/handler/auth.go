package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/utils"
	"github.com/ammowing/lawncare-api/internal/validate"
)

// AuthHandler implements registration, login and the refresh-token rotation
// flow. Refresh tokens are JWTs whose hash is also tracked server-side so a
// logout or rotation invalidates them before expiry.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo, tokens *repository.TokenRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Tokens: tokens}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// issueTokens signs an access/refresh pair and records the refresh hash.
func (h *AuthHandler) issueTokens(c echo.Context, user model.User) (tokenPairResponse, error) {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Email, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return tokenPairResponse{}, err
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.JWTSecret, user.ID, user.Email, user.Role, h.Cfg.RefreshTTLDays)
	if err != nil {
		return tokenPairResponse{}, err
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Tokens.StoreRefresh(ctx, user.ID, utils.HashTokenRaw(refresh.Token), refresh.Exp); err != nil {
		return tokenPairResponse{}, err
	}
	return tokenPairResponse{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		TokenType:    "bearer",
	}, nil
}

// Register creates a customer account and signs the caller in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	id, err := h.Users.Create(ctx, req.Email, req.Password, req.FullName, req.Phone, model.RoleCustomer, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return apiError(c, http.StatusConflict, "email already registered")
		}
		return apiError(c, http.StatusInternalServerError, "could not create account")
	}

	created, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not create account")
	}

	tokens, err := h.issueTokens(c, created)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not issue tokens")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"user":          created,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"token_type":    tokens.TokenType,
	})
}

// Login verifies credentials and returns a fresh token pair. Credential and
// account-state failures are indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	user, err := h.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return apiError(c, http.StatusUnauthorized, "invalid email or password")
	}
	if !utils.VerifyPassword(user.PasswordHash, req.Password) || !user.IsActive {
		return apiError(c, http.StatusUnauthorized, "invalid email or password")
	}

	if err := h.Users.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		c.Logger().Errorf("login: touch last_login for user %d: %v", user.ID, err)
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not issue tokens")
	}
	return c.JSON(http.StatusOK, tokens)
}

// Refresh rotates a refresh token: the presented token must be a valid
// refresh JWT and its hash must still be live server-side. The old hash is
// revoked before the new pair is issued.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	claims, err := utils.ParseToken(h.Cfg.JWTSecret, req.RefreshToken, utils.KindRefresh)
	if err != nil {
		return apiError(c, http.StatusUnauthorized, "invalid refresh token")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	hash := utils.HashTokenRaw(req.RefreshToken)
	userID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil || userID != claims.UserID {
		return apiError(c, http.StatusUnauthorized, "invalid refresh token")
	}

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil || !user.IsActive {
		return apiError(c, http.StatusUnauthorized, "invalid refresh token")
	}

	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not rotate token")
	}
	tokens, err := h.issueTokens(c, user)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not issue tokens")
	}
	return c.JSON(http.StatusOK, tokens)
}

// Logout revokes every live refresh token for the caller.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return apiError(c, http.StatusUnauthorized, "not authenticated")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Tokens.RevokeAllForUser(ctx, uid); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not log out")
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := currentUserID(c)
	if !ok {
		return apiError(c, http.StatusUnauthorized, "not authenticated")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return apiError(c, http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}
