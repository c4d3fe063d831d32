// Package service provides the RabbitMQ publisher for catalog events.
// Errors are returned, not logged, so the caller decides how loudly a lost
// event is reported.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/obedtech/catalog-api/internal/queue"
)

const (
	// dialTimeout keeps a request from stalling when the broker is unreachable.
	dialTimeout = 2 * time.Second
	// redialDelay is how long a failed dial suppresses further attempts.
	redialDelay = 5 * time.Second
)

// ErrBrokerUnavailable is returned without dialing while a recent connection
// attempt is still within its redial delay.
var ErrBrokerUnavailable = errors.New("rabbitmq: broker unavailable")

// Publisher sends CatalogEvents to the catalog.events queue over a single
// long-lived connection, reopened lazily after it drops.  It is safe for
// concurrent use; publishes are serialized on one channel.
type Publisher struct {
	url         string
	now         func() time.Time
	redialDelay time.Duration

	mu        sync.Mutex
	conn      *amqp.Connection
	ch        *amqp.Channel
	downUntil time.Time
}

// NewPublisher returns nil when url is empty; handlers treat a nil publisher
// as "events disabled".  No connection is made until the first Publish.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, now: time.Now, redialDelay: redialDelay}
}

// Publish stamps ev with the current time when unset and publishes it as a
// persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, ev q.CatalogEvent) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = p.now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         string(ev.Type),
		MessageId:    ev.ID,
		Body:         body,
	}
	// default exchange, routing key = queue name
	if err := ch.PublishWithContext(ctx, "", q.CatalogQueue, false, false, pub); err != nil {
		p.reset()
		return fmt.Errorf("rabbitmq: publish: %w", err)
	}
	return nil
}

// Close releases the connection, if one is open.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	var err error
	if p.conn != nil {
		err = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
	return err
}

// channel returns the open channel, dialing and declaring the queue when
// there is none.  p.mu must be held.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()
	if p.now().Before(p.downUntil) {
		return nil, ErrBrokerUnavailable
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		p.downUntil = p.now().Add(p.redialDelay)
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(q.CatalogQueue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare %s: %w", q.CatalogQueue, err)
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

// reset drops a dead connection.  p.mu must be held.
func (p *Publisher) reset() {
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}
