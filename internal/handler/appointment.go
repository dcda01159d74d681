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

// AppointmentHandler handles bookings and the status workflow over them.
type AppointmentHandler struct {
	Cfg          config.Config
	Appointments *repository.AppointmentRepo
	Outbox       *queue.Publisher
}

func NewAppointmentHandler(cfg config.Config, appointments *repository.AppointmentRepo, outbox *queue.Publisher) *AppointmentHandler {
	return &AppointmentHandler{Cfg: cfg, Appointments: appointments, Outbox: outbox}
}

type appointmentCreateRequest struct {
	FullName        string    `json:"full_name" validate:"required,min=1,max=255"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required,phone"`
	ServiceType     string    `json:"service_type" validate:"required,max=100"`
	Address         string    `json:"address" validate:"required,max=500"`
	ScheduledDate   time.Time `json:"scheduled_date" validate:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	QuoteID         *uint64   `json:"quote_id"`
	Notes           string    `json:"notes" validate:"omitempty,max=2000"`
}

// Create books an appointment from the public site. Duration defaults to one
// hour and is clamped to the accepted range by validation. The end time is
// derived server-side; a confirmation email is queued best effort.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req appointmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = model.DefaultDurationMinutes
	}
	if req.DurationMinutes < model.MinDurationMinutes || req.DurationMinutes > model.MaxDurationMinutes {
		return apiError(c, http.StatusUnprocessableEntity,
			fmt.Sprintf("duration_minutes must be between %d and %d", model.MinDurationMinutes, model.MaxDurationMinutes))
	}

	a := model.Appointment{
		QuoteID:         req.QuoteID,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceType:     req.ServiceType,
		Address:         req.Address,
		ScheduledDate:   req.ScheduledDate.UTC(),
		DurationMinutes: req.DurationMinutes,
		Status:          model.AppointmentScheduled,
		Notes:           req.Notes,
	}
	if claims := optionalClaims(c, h.Cfg.JWTSecret); claims != nil {
		uid := claims.UserID
		a.UserID = &uid
	}
	a.RecomputeEnd()

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Appointments.Create(ctx, &a); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not book appointment")
	}

	go func(a model.Appointment) {
		_ = h.Outbox.PublishEmail(context.Background(), queue.EmailEvent{
			Kind: queue.EmailAppointmentConfirmation,
			To:   a.Email,
			Data: map[string]string{
				"full_name":      a.FullName,
				"service_type":   a.ServiceType,
				"scheduled_date":   a.ScheduledDate.Format(time.RFC1123),
				"address":          a.Address,
				"duration_minutes": fmt.Sprint(a.DurationMinutes),
				"appointment_id":   fmt.Sprint(a.ID),
			},
		})
	}(a)

	return c.JSON(http.StatusCreated, a)
}

// List returns appointments, optionally filtered by status. Admin only.
func (h *AppointmentHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !model.ValidAppointmentStatus(status) {
		return apiError(c, http.StatusBadRequest, "unknown appointment status")
	}
	skip, limit := pagination(c)

	ctx, cancel := reqCtx(c)
	defer cancel()
	appointments, err := h.Appointments.List(ctx, status, skip, limit)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not list appointments")
	}
	return c.JSON(http.StatusOK, appointments)
}

// ListByUser returns one user's appointments. Customers may only list their
// own; admins may list anyone's.
func (h *AppointmentHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid user id")
	}
	if !canAccessOwned(c, &userID) {
		return apiError(c, http.StatusForbidden, "forbidden")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	appointments, err := h.Appointments.ListByUser(ctx, userID)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not list appointments")
	}
	return c.JSON(http.StatusOK, appointments)
}

// Get returns one appointment. Owner or admin; ownerless bookings are
// admin-only.
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid appointment id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "appointment not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load appointment")
	}
	if !canAccessOwned(c, a.UserID) {
		return apiError(c, http.StatusForbidden, "forbidden")
	}
	return c.JSON(http.StatusOK, a)
}

type appointmentUpdateRequest struct {
	ScheduledDate      *time.Time `json:"scheduled_date"`
	DurationMinutes    *int       `json:"duration_minutes"`
	Status             *string    `json:"status"`
	Notes              *string    `json:"notes" validate:"omitempty,max=2000"`
	AdminNotes         *string    `json:"admin_notes" validate:"omitempty,max=2000"`
	CancellationReason *string    `json:"cancellation_reason" validate:"omitempty,max=500"`
}

// Update reschedules or advances an appointment. Owners may reschedule and
// cancel their own bookings; admin-only fields are rejected for customers.
// Status changes stamp confirmed_at / completed_at exactly once, and any
// change to date or duration re-derives the end time.
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid appointment id")
	}

	var req appointmentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid request body")
	}
	if errs := validate.Struct(req); errs != nil {
		return validationError(c, errs)
	}
	if req.Status != nil && !model.ValidAppointmentStatus(*req.Status) {
		return apiError(c, http.StatusBadRequest, "unknown appointment status")
	}
	if req.DurationMinutes != nil &&
		(*req.DurationMinutes < model.MinDurationMinutes || *req.DurationMinutes > model.MaxDurationMinutes) {
		return apiError(c, http.StatusUnprocessableEntity,
			fmt.Sprintf("duration_minutes must be between %d and %d", model.MinDurationMinutes, model.MaxDurationMinutes))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "appointment not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load appointment")
	}
	if !canAccessOwned(c, a.UserID) {
		return apiError(c, http.StatusForbidden, "forbidden")
	}
	if !isAdmin(c) {
		// Customers manage the booking itself; staff fields and workflow
		// states past cancellation stay admin-only.
		if req.AdminNotes != nil {
			return apiError(c, http.StatusForbidden, "admin_notes is admin-only")
		}
		if req.Status != nil && *req.Status != model.AppointmentCancelled {
			return apiError(c, http.StatusForbidden, "customers may only cancel")
		}
	}

	if req.ScheduledDate != nil {
		a.ScheduledDate = req.ScheduledDate.UTC()
	}
	if req.DurationMinutes != nil {
		a.DurationMinutes = *req.DurationMinutes
	}
	a.RecomputeEnd()

	if req.Status != nil {
		a.ApplyStatus(*req.Status, time.Now().UTC())
	}
	if req.Notes != nil {
		a.Notes = *req.Notes
	}
	if req.AdminNotes != nil {
		a.AdminNotes = *req.AdminNotes
	}
	if req.CancellationReason != nil {
		a.CancellationReason = *req.CancellationReason
	}

	if err := h.Appointments.Update(ctx, &a); err != nil {
		return apiError(c, http.StatusInternalServerError, "could not update appointment")
	}
	return c.JSON(http.StatusOK, a)
}

// Delete removes an appointment. Owners may delete their own bookings;
// ownerless ones are admin-only.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return apiError(c, http.StatusBadRequest, "invalid appointment id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "appointment not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not load appointment")
	}
	if !canAccessOwned(c, a.UserID) {
		return apiError(c, http.StatusForbidden, "forbidden")
	}

	if err := h.Appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "appointment not found")
		}
		return apiError(c, http.StatusInternalServerError, "could not delete appointment")
	}
	return c.NoContent(http.StatusNoContent)
}
