package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends EmailEvents to the notify.email queue. Publishing is
// best-effort: every error is logged and returned so callers on the request
// path can ignore it without interrupting the committed domain write.
type Publisher struct {
	URL string
}

func NewPublisher(url string) *Publisher { return &Publisher{URL: url} }

// PublishEmail publishes a single event. Messages are marked persistent and
// the queue is declared durable so queued mail survives broker restarts.
func (p *Publisher) PublishEmail(ctx context.Context, event EmailEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("email-outbox: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("email-outbox: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		emailQueueName, // name
		true,           // durable
		false,          // autoDelete
		false,          // exclusive
		false,          // noWait
		nil,            // args
	); err != nil {
		log.Printf("email-outbox: queue declare failed: %v", err)
		return err
	}

	if event.QueuedAt == "" {
		event.QueuedAt = time.Now().UTC().Format(time.RFC3339)
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("email-outbox: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",             // default exchange
		emailQueueName, // routing key = queue name
		false,          // mandatory
		false,          // immediate
		pub,
	); err != nil {
		log.Printf("email-outbox: publish failed: %v", err)
		return err
	}
	return nil
}
