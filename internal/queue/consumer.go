package queue

// This file contains the background consumer that listens to the
// plan.created and review.created queues and writes structured lines to
// logs/events.log. It is optional infrastructure: the HTTP request path
// never waits on it.

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartEventConsumer connects to RabbitMQ, declares both event queues
// (durable), and starts consuming messages. Each message is appended to
// logs/events.log in a single-line, human-friendly format. The function runs
// a reconnect loop and keeps running, logging any processing errors while
// rejecting the offending message so the server continues operating.
func StartEventConsumer() {
	url := Publisher{}.brokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("event-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeBoth(conn); err != nil {
			log.Printf("event-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
		_ = conn.Close()
	}
}

// consumeBoth runs one consumer per queue on the shared connection and
// returns as soon as either of them stops, which signals a broken
// connection. The caller closes the connection, which unblocks the other
// consumer; the channel is buffered so its send never blocks.
func consumeBoth(conn *amqp.Connection) error {
	errc := make(chan error, 2)
	for _, name := range []string{PlanCreatedQueue, ReviewCreatedQueue} {
		go func(queueName string) {
			errc <- consumeQueue(conn, queueName)
		}(name)
	}
	return <-errc
}

func consumeQueue(conn *amqp.Connection, queueName string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for msg := range msgs {
		line, err := formatEvent(queueName, msg.Body)
		if err != nil {
			log.Printf("event-consumer: bad message on %s: %v", queueName, err)
			_ = msg.Nack(false, false)
			continue
		}
		if err := appendEventLog(line); err != nil {
			log.Printf("event-consumer: write log: %v", err)
			_ = msg.Nack(false, true)
			continue
		}
		_ = msg.Ack(false)
	}
	return fmt.Errorf("delivery channel for %s closed", queueName)
}

func formatEvent(queueName string, body []byte) (string, error) {
	ts := time.Now().UTC().Format(time.RFC3339)
	switch queueName {
	case PlanCreatedQueue:
		var e PlanCreatedEvent
		if err := json.Unmarshal(body, &e); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s plan.created plan=%s user=%s medication=%q", ts, e.PlanID, e.UserID, e.MedicationName), nil
	case ReviewCreatedQueue:
		var e ReviewCreatedEvent
		if err := json.Unmarshal(body, &e); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s review.created review=%s user=%s plan=%s rating=%d", ts, e.ReviewID, e.UserID, e.PlanID, e.Rating), nil
	}
	return "", fmt.Errorf("unknown queue %q", queueName)
}

func appendEventLog(line string) error {
	dir := "logs"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "events.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = fmt.Fprintln(f, line)
	return err
}
