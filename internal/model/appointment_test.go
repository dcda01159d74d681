package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeEnd(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	a := Appointment{ScheduledDate: start, DurationMinutes: 120}
	a.RecomputeEnd()
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), a.ScheduledEndDate)

	a.DurationMinutes = 45
	a.RecomputeEnd()
	assert.Equal(t, start.Add(45*time.Minute), a.ScheduledEndDate)
}

func TestApplyStatusStampsOnce(t *testing.T) {
	a := Appointment{Status: AppointmentScheduled}
	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	a.ApplyStatus(AppointmentConfirmed, first)
	assert.Equal(t, AppointmentConfirmed, a.Status)
	assert.Equal(t, first, *a.ConfirmedAt)

	// Re-confirming keeps the original stamp.
	a.ApplyStatus(AppointmentConfirmed, later)
	assert.Equal(t, first, *a.ConfirmedAt)

	// Bouncing through another status and back also keeps it.
	a.ApplyStatus(AppointmentInProgress, later)
	a.ApplyStatus(AppointmentConfirmed, later.Add(time.Hour))
	assert.Equal(t, first, *a.ConfirmedAt)
}

func TestApplyStatusCompletedStamp(t *testing.T) {
	a := Appointment{Status: AppointmentInProgress}
	done := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	a.ApplyStatus(AppointmentCompleted, done)
	assert.Equal(t, done, *a.CompletedAt)
	assert.Nil(t, a.ConfirmedAt)

	a.ApplyStatus(AppointmentCompleted, done.Add(time.Hour))
	assert.Equal(t, done, *a.CompletedAt)
}

func TestApplyStatusCancelledStampsNothing(t *testing.T) {
	a := Appointment{Status: AppointmentScheduled}
	a.ApplyStatus(AppointmentCancelled, time.Now())
	assert.Equal(t, AppointmentCancelled, a.Status)
	assert.Nil(t, a.ConfirmedAt)
	assert.Nil(t, a.CompletedAt)
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []string{AppointmentScheduled, AppointmentConfirmed, AppointmentInProgress, AppointmentCompleted, AppointmentCancelled} {
		assert.True(t, ValidAppointmentStatus(s), s)
	}
	for _, s := range []string{"", "SCHEDULED", "done", "pending"} {
		assert.False(t, ValidAppointmentStatus(s), s)
	}
}

func TestValidQuoteStatus(t *testing.T) {
	for _, s := range QuoteStatuses {
		assert.True(t, ValidQuoteStatus(s), s)
	}
	assert.False(t, ValidQuoteStatus("archived"))
	assert.False(t, ValidQuoteStatus(""))
}
