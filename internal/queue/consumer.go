package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Sender delivers a rendered email. Implemented by notify.Mailer.
type Sender interface {
	Send(event EmailEvent) error
}

// StartEmailConsumer connects to the broker, declares the notify.email queue
// and delivers each event through the Sender. It runs a reconnect loop with
// exponential backoff and never returns under normal operation; run it in its
// own goroutine. Messages that fail to send are rejected without requeue so
// a bad address cannot wedge the queue.
func StartEmailConsumer(url string, sender Sender) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("email-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, sender); err != nil {
			log.Printf("email-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, sender Sender) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		log.Printf("email-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(emailQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(emailQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		var ev EmailEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			log.Printf("email-consumer: bad message: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		if err := sender.Send(ev); err != nil {
			log.Printf("email-consumer: send %s to %s failed: %v", ev.Kind, ev.To, err)
			_ = d.Nack(false, false) // do not requeue, avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}
