package model

import "time"

// Appointment statuses. The set is open: any status may follow any other.
// The only transition side effects are the once-only ConfirmedAt and
// CompletedAt stamps applied by ApplyStatus.
const (
	AppointmentScheduled  = "scheduled"
	AppointmentConfirmed  = "confirmed"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
)

// Appointment duration bounds in minutes.
const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 480
	DefaultDurationMinutes = 60
)

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment mirrors the `appointments` table. UserID and QuoteID are
// nullable: public bookings carry no owner and are then visible to admins
// only. ScheduledEndDate is derived, never set by clients.
type Appointment struct {
	ID                 uint64     `json:"id"`
	UserID             *uint64    `json:"user_id,omitempty"`
	QuoteID            *uint64    `json:"quote_id,omitempty"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	ServiceType        string     `json:"service_type"`
	Address            string     `json:"address"`
	ScheduledDate      time.Time  `json:"scheduled_date"`
	ScheduledEndDate   time.Time  `json:"scheduled_end_date"`
	DurationMinutes    int        `json:"duration_minutes"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes,omitempty"`
	AdminNotes         string     `json:"admin_notes,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ConfirmedAt        *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// RecomputeEnd re-derives ScheduledEndDate from ScheduledDate and
// DurationMinutes. Must be called whenever either input changes.
func (a *Appointment) RecomputeEnd() {
	a.ScheduledEndDate = a.ScheduledDate.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// ApplyStatus sets the status and stamps lifecycle timestamps. ConfirmedAt is
// set the first time the appointment becomes confirmed and never overwritten;
// likewise CompletedAt for completed. Repeat transitions keep the original
// stamp.
func (a *Appointment) ApplyStatus(status string, now time.Time) {
	a.Status = status
	switch status {
	case AppointmentConfirmed:
		if a.ConfirmedAt == nil {
			t := now
			a.ConfirmedAt = &t
		}
	case AppointmentCompleted:
		if a.CompletedAt == nil {
			t := now
			a.CompletedAt = &t
		}
	}
}
