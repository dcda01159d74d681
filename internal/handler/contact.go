package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/model"
	"github.com/ammowing/lawncare-api/internal/queue"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/validate"
)

// ContactHandler handles contact-form submissions and the admin inbox.
type ContactHandler struct {
	Cfg      config.Config
	Contacts *repository.ContactRepo
	Outbox   *queue.Publisher
}

func NewContactHandler(cfg config.Config, contacts *repository.ContactRepo, outbox *queue.Publisher) *ContactHandler {
	return &ContactHandler{Cfg: cfg, Contacts: contacts, Outbox: outbox}
}

type contactCreateRequest struct {
	FullName    string `json:"full_name" validate:"required,min=1,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	Subject     string `json:"subject" validate:"omitempty,max=255"`
	ServiceType string `json:"service_type" validate:"omitempty,max=100"`
	Message     string `json:"message" validate:"required,min=1,max=5000"`
}

// Create accepts a contact-form message and queues an admin notification.
func (h *ContactHandler) Create(c echo.Context) error {
	var req contactCreateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}

	msg := model.Contact{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Contacts.Create(ctx, &msg); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not submit message")
	}

	go func(msg model.Contact) {
		_ = h.Outbox.PublishEmail(context.Background(), queue.EmailEvent{
			Kind: queue.EmailContactNotification,
			To:   h.Cfg.AdminEmail,
			Data: map[string]string{
				"full_name": msg.FullName,
				"email":     msg.Email,
				"phone":     msg.Phone,
				"subject":   msg.Subject,
				"message":   msg.Message,
			},
		})
	}(msg)

	return c.JSON(http.StatusCreated, msg)
}

// List returns contact messages, optionally unread only. Admin only.
func (h *ContactHandler) List(c echo.Context) error {
	unreadOnly := c.QueryParam("unread_only") == "true"
	skip, limit := pagination(c)

	ctx, cancel := reqCtx(c)
	defer cancel()
	msgs, err := h.Contacts.List(ctx, unreadOnly, skip, limit)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not list messages")
	}
	return c.JSON(http.StatusOK, msgs)
}

// Get returns one message and marks it read on first open. Admin only.
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid message id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	msg, err := h.Contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "message not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load message")
	}

	if !msg.IsRead {
		now := time.Now().UTC()
		msg.IsRead = true
		msg.ReadAt = &now
		if err := h.Contacts.Update(ctx, &msg); err != nil {
			return apiError(c, http.StatusInternalServerError, "could not update message")
		}
	}
	return c.JSON(http.StatusOK, msg)
}

// MarkReplied stamps a message as replied. Admin only.
func (h *ContactHandler) MarkReplied(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid message id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	msg, err := h.Contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "message not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load message")
	}

	now := time.Now().UTC()
	if !msg.IsRead {
		msg.IsRead = true
		msg.ReadAt = &now
	}
	if !msg.IsReplied {
		msg.IsReplied = true
		msg.RepliedAt = &now
	}
	if err := h.Contacts.Update(ctx, &msg); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not update message")
	}
	return c.JSON(http.StatusOK, msg)
}

// Delete removes a message. Admin only.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid message id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "message not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not delete message")
	}
	return c.NoContent(http.StatusNoContent)
}
