package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/validate"
)

// TestimonialHandler serves public reviews and the admin moderation flow.
type TestimonialHandler struct {
	Cfg          config.Config
	Testimonials *repository.TestimonialRepo
}

func NewTestimonialHandler(cfg config.Config, testimonials *repository.TestimonialRepo) *TestimonialHandler {
	return &TestimonialHandler{Cfg: cfg, Testimonials: testimonials}
}

type testimonialCreateRequest struct {
	CustomerName     string  `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail    string  `json:"customer_email" validate:"omitempty,email"`
	CustomerLocation string  `json:"customer_location" validate:"omitempty,max=255"`
	Rating           float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Title            string  `json:"title" validate:"omitempty,max=255"`
	Content          string  `json:"content" validate:"required,min=1,max=5000"`
	ServiceType      string  `json:"service_type" validate:"omitempty,max=100"`
}

// Create accepts a public review. It starts unapproved and stays out of
// listings until moderated.
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req testimonialCreateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	t := model.Testimonial{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerLocation: req.CustomerLocation,
		Rating:           req.Rating,
		Title:            req.Title,
		Content:          req.Content,
		ServiceType:      req.ServiceType,
	}
	if claims := optionalClaims(c, h.Cfg.JWTSecret); claims != nil {
		uid := claims.UserID
		t.UserID = &uid
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Testimonials.Create(ctx, &t); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not submit testimonial")
	}
	return c.JSON(http.StatusCreated, t)
}

// List returns approved testimonials, optionally only featured ones. Admins
// may pass approved_only=false to moderate pending reviews.
func (h *TestimonialHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	featuredOnly := c.QueryParam("featured_only") == "true"

	approvedOnly := true
	if c.QueryParam("approved_only") == "false" {
		if claims := optionalClaims(c, h.Cfg.JWTSecret); claims != nil && claims.Role == model.RoleAdmin {
			approvedOnly = false
		}
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Testimonials.List(ctx, approvedOnly, featuredOnly, skip, limit)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not list testimonials")
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one testimonial. Unapproved reviews read as not found unless
// the caller is an admin.
func (h *TestimonialHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid testimonial id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "testimonial not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load testimonial")
	}
	if !t.IsApproved {
		claims := optionalClaims(c, h.Cfg.JWTSecret)
		if claims == nil || claims.Role != model.RoleAdmin {
			return apiError(c, http.StatusNotFound, "testimonial not found")
		}
	}
	return c.JSON(http.StatusOK, t)
}

type testimonialUpdateRequest struct {
	CustomerName     *string  `json:"customer_name" validate:"omitempty,min=1,max=255"`
	CustomerLocation *string  `json:"customer_location" validate:"omitempty,max=255"`
	Rating           *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Title            *string  `json:"title" validate:"omitempty,max=255"`
	Content          *string  `json:"content" validate:"omitempty,min=1,max=5000"`
	ServiceType      *string  `json:"service_type" validate:"omitempty,max=100"`
	IsApproved       *bool    `json:"is_approved"`
	IsFeatured       *bool    `json:"is_featured"`
}

// Update applies a partial update. ApprovedAt is stamped on the first
// approval and kept on re-approval. Admin only.
func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid testimonial id")
	}

	var req testimonialUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "testimonial not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load testimonial")
	}

	if req.CustomerName != nil {
		t.CustomerName = *req.CustomerName
	}
	if req.CustomerLocation != nil {
		t.CustomerLocation = *req.CustomerLocation
	}
	if req.Rating != nil {
		t.Rating = *req.Rating
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Content != nil {
		t.Content = *req.Content
	}
	if req.ServiceType != nil {
		t.ServiceType = *req.ServiceType
	}
	if req.IsApproved != nil {
		if *req.IsApproved && t.ApprovedAt == nil {
			now := time.Now().UTC()
			t.ApprovedAt = &now
		}
		t.IsApproved = *req.IsApproved
	}
	if req.IsFeatured != nil {
		t.IsFeatured = *req.IsFeatured
	}

	if err := h.Testimonials.Update(ctx, &t); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not update testimonial")
	}
	return c.JSON(http.StatusOK, t)
}

// Approve marks a testimonial as approved, stamping approved_at on the first
// approval only. Admin only.
func (h *TestimonialHandler) Approve(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid testimonial id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "testimonial not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load testimonial")
	}

	if t.ApprovedAt == nil {
		now := time.Now().UTC()
		t.ApprovedAt = &now
	}
	t.IsApproved = true

	if err := h.Testimonials.Update(ctx, &t); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not update testimonial")
	}
	return c.JSON(http.StatusOK, t)
}

// Feature toggles the featured flag. Only approved testimonials may be
// featured. Admin only.
func (h *TestimonialHandler) Feature(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid testimonial id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "testimonial not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load testimonial")
	}
	if !t.IsApproved {
		return apiError(c, http.StatusBadRequest, "only approved testimonials can be featured")
	}

	t.IsFeatured = !t.IsFeatured

	if err := h.Testimonials.Update(ctx, &t); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not update testimonial")
	}
	return c.JSON(http.StatusOK, t)
}

// Delete removes a testimonial. Admin only.
func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid testimonial id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "testimonial not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not delete testimonial")
	}
	return c.NoContent(http.StatusNoContent)
}
