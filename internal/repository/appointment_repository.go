package repository

import (
	"context"
	"database/sql"

	"github.com/ammowing/lawncare-api/internal/model"
)

// AppointmentRepo persists appointment bookings.
type AppointmentRepo struct{ DB *sql.DB }

func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{DB: db} }

const appointmentCols = "id,user_id,quote_id,full_name,email,phone,service_type,address," +
	"scheduled_date,scheduled_end_date,duration_minutes,status,notes,admin_notes," +
	"cancellation_reason,created_at,updated_at,confirmed_at,completed_at"

// Create inserts an appointment and sets its ID. ScheduledEndDate must
// already be computed by the caller.
func (r *AppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO appointments (user_id, quote_id, full_name, email, phone, service_type, address,
		 scheduled_date, scheduled_end_date, duration_minutes, status, notes, admin_notes, cancellation_reason)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		nullID(a.UserID), nullID(a.QuoteID), a.FullName, a.Email, a.Phone, a.ServiceType, a.Address,
		a.ScheduledDate, a.ScheduledEndDate, a.DurationMinutes, a.Status, a.Notes, a.AdminNotes,
		a.CancellationReason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an appointment by id.
func (r *AppointmentRepo) GetByID(ctx context.Context, id uint64) (model.Appointment, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+appointmentCols+" FROM appointments WHERE id=? LIMIT 1", id)
	a, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return model.Appointment{}, ErrNotFound
	}
	return a, err
}

// List returns appointments newest-first by start time, optionally filtered
// by status.
func (r *AppointmentRepo) List(ctx context.Context, status string, skip, limit int) ([]model.Appointment, error) {
	q := "SELECT " + appointmentCols + " FROM appointments"
	args := []interface{}{}
	if status != "" {
		q += " WHERE status=?"
		args = append(args, status)
	}
	q += " ORDER BY scheduled_date DESC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

// ListByUser returns every appointment owned by the given user, newest first.
func (r *AppointmentRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+appointmentCols+" FROM appointments WHERE user_id=? ORDER BY scheduled_date DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

// Update rewrites every mutable column, including the lifecycle timestamps
// stamped by the model.
func (r *AppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE appointments SET scheduled_date=?, scheduled_end_date=?, duration_minutes=?, status=?,
		 notes=?, admin_notes=?, cancellation_reason=?, confirmed_at=?, completed_at=?, updated_at=NOW()
		 WHERE id=?`,
		a.ScheduledDate, a.ScheduledEndDate, a.DurationMinutes, a.Status,
		a.Notes, a.AdminNotes, a.CancellationReason, nullTime(a.ConfirmedAt), nullTime(a.CompletedAt),
		a.ID)
	return err
}

// Delete hard-deletes an appointment. Missing rows yield ErrNotFound.
func (r *AppointmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM appointments WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func collectAppointments(rows *sql.Rows) ([]model.Appointment, error) {
	out := []model.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(scan func(dest ...interface{}) error) (model.Appointment, error) {
	var (
		a                      model.Appointment
		userID, quoteID        sql.NullInt64
		confirmedAt, completed sql.NullTime
	)
	err := scan(&a.ID, &userID, &quoteID, &a.FullName, &a.Email, &a.Phone, &a.ServiceType,
		&a.Address, &a.ScheduledDate, &a.ScheduledEndDate, &a.DurationMinutes, &a.Status,
		&a.Notes, &a.AdminNotes, &a.CancellationReason, &a.CreatedAt, &a.UpdatedAt,
		&confirmedAt, &completed)
	if err != nil {
		return model.Appointment{}, err
	}
	a.UserID = idPtr(userID)
	a.QuoteID = idPtr(quoteID)
	a.ConfirmedAt = timePtr(confirmedAt)
	a.CompletedAt = timePtr(completed)
	return a, nil
}
