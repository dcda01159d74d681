package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/queue"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/validate"
)

// QuoteHandler handles quote requests coming off the public site and the
// admin review workflow over them.
type QuoteHandler struct {
	Cfg    config.Config
	Quotes *repository.QuoteRepo
	Outbox *queue.Publisher
}

func NewQuoteHandler(cfg config.Config, quotes *repository.QuoteRepo, outbox *queue.Publisher) *QuoteHandler {
	return &QuoteHandler{Cfg: cfg, Quotes: quotes, Outbox: outbox}
}

type quoteCreateRequest struct {
	FullName           string     `json:"full_name" validate:"required,min=1,max=255"`
	Email              string     `json:"email" validate:"required,email"`
	Phone              string     `json:"phone" validate:"required,phone"`
	Address            string     `json:"address" validate:"required,max=500"`
	PropertySize       *float64   `json:"property_size" validate:"omitempty,gt=0"`
	PropertyType       string     `json:"property_type" validate:"omitempty,max=100"`
	ServiceType        string     `json:"service_type" validate:"required,max=100"`
	ServiceFrequency   string     `json:"service_frequency" validate:"omitempty,max=100"`
	PreferredStartDate *time.Time `json:"preferred_start_date"`
	AdditionalDetails  string     `json:"additional_details" validate:"omitempty,max=2000"`
}

// Create accepts a public quote request. A logged-in customer gets the quote
// attached to their account; anonymous submissions stay ownerless. A
// confirmation email is queued after the write commits, best effort.
func (h *QuoteHandler) Create(c echo.Context) error {
	var req quoteCreateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	q := model.Quote{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		PropertySize:       req.PropertySize,
		PropertyType:       req.PropertyType,
		ServiceType:        req.ServiceType,
		ServiceFrequency:   req.ServiceFrequency,
		PreferredStartDate: req.PreferredStartDate,
		AdditionalDetails:  req.AdditionalDetails,
		Status:             model.QuotePending,
	}
	if claims := optionalClaims(c, h.Cfg.JWTSecret); claims != nil {
		uid := claims.UserID
		q.UserID = &uid
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Quotes.Create(ctx, &q); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not submit quote request")
	}

	go func(q model.Quote) {
		_ = h.Outbox.PublishEmail(context.Background(), queue.EmailEvent{
			Kind: queue.EmailQuoteConfirmation,
			To:   q.Email,
			Data: map[string]string{
				"full_name":    q.FullName,
				"service_type": q.ServiceType,
				"address":      q.Address,
				"quote_id":     fmt.Sprint(q.ID),
			},
		})
	}(q)

	return c.JSON(http.StatusCreated, q)
}

// List returns quotes, optionally filtered by status. Admin only.
func (h *QuoteHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !model.ValidQuoteStatus(status) {
		return apiError(c, http.StatusBadRequest, "unknown quote status")
	}
	skip, limit := pagination(c)

	ctx, cancel := reqCtx(c)
	defer cancel()
	quotes, err := h.Quotes.List(ctx, status, skip, limit)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not list quotes")
	}
	return c.JSON(http.StatusOK, quotes)
}

// Get returns one quote. Owner or admin; ownerless quotes are admin-only.
func (h *QuoteHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid quote id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	q, err := h.Quotes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "quote not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load quote")
	}
	if !canAccessOwned(c, q.UserID) {
		return apiError(c, http.StatusForbidden, "forbidden")
	}
	return c.JSON(http.StatusOK, q)
}

type quoteUpdateRequest struct {
	Status      *string  `json:"status"`
	QuotedPrice *float64 `json:"quoted_price" validate:"omitempty,gte=0"`
	QuoteNotes  *string  `json:"quote_notes" validate:"omitempty,max=2000"`
}

// Update lets an admin move a quote through the review workflow. ReviewedAt
// is stamped the first time the status leaves pending.
func (h *QuoteHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid quote id")
	}

	var req quoteUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}
	if req.Status != nil && !model.ValidQuoteStatus(*req.Status) {
		return apiError(c, http.StatusBadRequest, "unknown quote status")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	q, err := h.Quotes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "quote not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load quote")
	}

	if req.Status != nil {
		if q.Status == model.QuotePending && *req.Status != model.QuotePending && q.ReviewedAt == nil {
			now := time.Now().UTC()
			q.ReviewedAt = &now
		}
		q.Status = *req.Status
	}
	if req.QuotedPrice != nil {
		q.QuotedPrice = req.QuotedPrice
	}
	if req.QuoteNotes != nil {
		q.QuoteNotes = *req.QuoteNotes
	}

	if err := h.Quotes.Update(ctx, &q); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not update quote")
	}
	return c.JSON(http.StatusOK, q)
}

// Delete removes a quote. Admin only.
func (h *QuoteHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid quote id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Quotes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "quote not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not delete quote")
	}
	return c.NoContent(http.StatusNoContent)
}
