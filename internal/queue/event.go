// Package queue defines the email outbox: message payloads published to the
// broker on notifying writes, plus the publisher and background consumer.
package queue

// Email kinds rendered by the mailer.
const (
	EmailAppointmentConfirmation = "appointment_confirmation"
	EmailQuoteConfirmation       = "quote_confirmation"
	EmailContactNotification     = "contact_notification"
)

// emailQueueName is the durable queue carrying outbound mail events.
const emailQueueName = "notify.email"

// EmailEvent is published when a write should trigger an email. Data carries
// the template fields for the given kind so the consumer never has to query
// the primary database.
type EmailEvent struct {
	Kind     string            `json:"kind"`
	To       string            `json:"to"`
	Data     map[string]string `json:"data"`
	QueuedAt string            `json:"queued_at"`
}
