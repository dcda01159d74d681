// Package notify renders and delivers the transactional emails consumed off
// the notify.email queue.
package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/queue"
)

// Mailer sends email over SMTP. When no credentials are configured it logs
// the would-be send instead, so development environments work without a mail
// account.
type Mailer struct {
	Host      string
	Port      int
	User      string
	Pass      string
	FromEmail string
	FromName  string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		User:      cfg.SMTPUser,
		Pass:      cfg.SMTPPass,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
	}
}

// Send renders the event and delivers it. Unknown kinds are an error so they
// surface in the consumer log rather than vanish.
func (m *Mailer) Send(ev queue.EmailEvent) error {
	subject, body, err := render(ev)
	if err != nil {
		return err
	}
	if m.User == "" || m.Pass == "" {
		log.Printf("mailer: SMTP credentials not configured; would have sent %q to %s", subject, ev.To)
		return nil
	}

	msg := strings.Builder{}
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.FromName, m.FromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", ev.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := smtp.SendMail(addr, auth, m.FromEmail, []string{ev.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	log.Printf("mailer: sent %s to %s", ev.Kind, ev.To)
	return nil
}

func render(ev queue.EmailEvent) (subject, body string, err error) {
	d := ev.Data
	switch ev.Kind {
	case queue.EmailAppointmentConfirmation:
		subject = "Appointment Confirmation - AM Mowing"
		body = fmt.Sprintf(`<html><body>
<h2>Appointment Scheduled</h2>
<p>Dear %s,</p>
<p>Your appointment has been scheduled. Here are the details:</p>
<p><strong>Service:</strong> %s<br>
<strong>Date:</strong> %s<br>
<strong>Address:</strong> %s<br>
<strong>Duration:</strong> %s minutes</p>
<p>We will confirm your appointment shortly.</p>
<p>Best regards,<br>The AM Mowing Team</p>
</body></html>`,
			d["full_name"], d["service_type"], d["scheduled_date"], d["address"], d["duration_minutes"])
	case queue.EmailQuoteConfirmation:
		subject = "Quote Request Confirmation - AM Mowing"
		body = fmt.Sprintf(`<html><body>
<h2>Quote Request Received</h2>
<p>Dear %s,</p>
<p>Thank you for your quote request. We will get back to you within 24 hours.</p>
<p><strong>Service:</strong> %s<br>
<strong>Address:</strong> %s</p>
<p>Best regards,<br>The AM Mowing Team</p>
</body></html>`,
			d["full_name"], d["service_type"], d["address"])
	case queue.EmailContactNotification:
		subject = fmt.Sprintf("New Contact Form Submission from %s", d["full_name"])
		body = fmt.Sprintf(`<html><body>
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone:</strong> %s<br>
<strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
</body></html>`,
			d["full_name"], d["email"], d["phone"], d["subject"], d["message"])
	default:
		return "", "", fmt.Errorf("unknown email kind %q", ev.Kind)
	}
	return subject, body, nil
}
