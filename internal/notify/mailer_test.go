package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammowing/lawncare-api/internal/queue"
)

func TestRenderAppointmentConfirmation(t *testing.T) {
	subject, body, err := render(queue.EmailEvent{
		Kind: queue.EmailAppointmentConfirmation,
		To:   "c@example.com",
		Data: map[string]string{
			"full_name":        "Sam Carter",
			"service_type":     "lawn-mowing",
			"scheduled_date":   "Mon, 01 Jun 2025 10:00:00 UTC",
			"address":          "1 Example St",
			"duration_minutes": "60",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, subject, "Appointment Confirmation")
	assert.Contains(t, body, "Sam Carter")
	assert.Contains(t, body, "lawn-mowing")
	assert.Contains(t, body, "60 minutes")
}

func TestRenderQuoteConfirmation(t *testing.T) {
	subject, body, err := render(queue.EmailEvent{
		Kind: queue.EmailQuoteConfirmation,
		Data: map[string]string{"full_name": "Sam", "service_type": "hedging", "address": "1 Example St"},
	})
	require.NoError(t, err)
	assert.Contains(t, subject, "Quote Request Confirmation")
	assert.Contains(t, body, "hedging")
}

func TestRenderContactNotification(t *testing.T) {
	subject, body, err := render(queue.EmailEvent{
		Kind: queue.EmailContactNotification,
		Data: map[string]string{"full_name": "Sam", "email": "s@example.com", "message": "please call back"},
	})
	require.NoError(t, err)
	assert.Contains(t, subject, "Sam")
	assert.Contains(t, body, "please call back")
}

func TestRenderUnknownKind(t *testing.T) {
	_, _, err := render(queue.EmailEvent{Kind: "password_reset"})
	assert.Error(t, err)
}

func TestSendWithoutCredentialsIsNoop(t *testing.T) {
	m := &Mailer{Host: "smtp.example.com", Port: 587}
	err := m.Send(queue.EmailEvent{
		Kind: queue.EmailQuoteConfirmation,
		To:   "c@example.com",
		Data: map[string]string{"full_name": "Sam"},
	})
	assert.NoError(t, err)
}
