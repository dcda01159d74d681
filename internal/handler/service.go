package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/validate"
)

// ServiceHandler serves the public service catalog and its admin CRUD.
type ServiceHandler struct {
	Services *repository.ServiceRepo
}

func NewServiceHandler(services *repository.ServiceRepo) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

type serviceCreateRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=255"`
	Slug             string   `json:"slug" validate:"required,min=1,max=255"`
	Description      string   `json:"description" validate:"required"`
	ShortDescription string   `json:"short_description" validate:"omitempty,max=500"`
	BasePrice        float64  `json:"base_price" validate:"gte=0"`
	PriceUnit        string   `json:"price_unit" validate:"omitempty,max=50"`
	Features         []string `json:"features"`
	Icon             string   `json:"icon" validate:"omitempty,max=100"`
	IsActive         *bool    `json:"is_active"`
	DisplayOrder     int      `json:"display_order"`
}

// List returns catalog entries. Anonymous callers only see active services;
// admins may pass active_only=false to include disabled ones.
func (h *ServiceHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	activeOnly := c.QueryParam("active_only") != "false"

	ctx, cancel := reqCtx(c)
	defer cancel()
	services, err := h.Services.List(ctx, activeOnly, skip, limit)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not list services")
	}
	return c.JSON(http.StatusOK, services)
}

// Get returns one service by id.
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid service id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	svc, err := h.Services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "service not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load service")
	}
	return c.JSON(http.StatusOK, svc)
}

// GetBySlug resolves the customer-facing URL form.
func (h *ServiceHandler) GetBySlug(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := reqCtx(c)
	defer cancel()
	svc, err := h.Services.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "service not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load service")
	}
	return c.JSON(http.StatusOK, svc)
}

// Create adds a catalog entry. Admin only.
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceCreateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	svc := model.Service{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		BasePrice:        req.BasePrice,
		PriceUnit:        req.PriceUnit,
		Features:         req.Features,
		Icon:             req.Icon,
		IsActive:         true,
		DisplayOrder:     req.DisplayOrder,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if svc.PriceUnit == "" {
		svc.PriceUnit = "per service"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Services.Create(ctx, &svc); err != nil {
		if errors.Is(err, repository.ErrSlugExists) {
			return apiError(c, http.StatusConflict, "slug already in use")
		}
		return apiError(c, http.StatusInternalServerError, "could not create service")
	}
	return c.JSON(http.StatusCreated, svc)
}

type serviceUpdateRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Slug             *string  `json:"slug" validate:"omitempty,min=1,max=255"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"short_description" validate:"omitempty,max=500"`
	BasePrice        *float64 `json:"base_price" validate:"omitempty,gte=0"`
	PriceUnit        *string  `json:"price_unit" validate:"omitempty,max=50"`
	Features         []string `json:"features"`
	Icon             *string  `json:"icon" validate:"omitempty,max=100"`
	IsActive         *bool    `json:"is_active"`
	DisplayOrder     *int     `json:"display_order"`
}

// Update applies a partial update to a service. Admin only.
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid service id")
	}

	var req serviceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	svc, err := h.Services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "service not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load service")
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Slug != nil {
		svc.Slug = *req.Slug
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.ShortDescription != nil {
		svc.ShortDescription = *req.ShortDescription
	}
	if req.BasePrice != nil {
		svc.BasePrice = *req.BasePrice
	}
	if req.PriceUnit != nil {
		svc.PriceUnit = *req.PriceUnit
	}
	if req.Features != nil {
		svc.Features = req.Features
	}
	if req.Icon != nil {
		svc.Icon = *req.Icon
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		svc.DisplayOrder = *req.DisplayOrder
	}

	if err := h.Services.Update(ctx, &svc); err != nil {
		if errors.Is(err, repository.ErrSlugExists) {
			return apiError(c, http.StatusConflict, "slug already in use")
		}
		return apiError(c, http.StatusInternalServerError, "could not update service")
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete removes a service. Admin only.
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid service id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Services.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "service not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not delete service")
	}
	return c.NoContent(http.StatusNoContent)
}
