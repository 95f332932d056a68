// Package service connects handlers to the side channels of a content
// change: the message broker and the metrics registry.
package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/school-admin/internal/config"
	q "github.com/iliyamo/school-admin/internal/queue"
)

// Publisher delivers content-change events.
type Publisher interface {
	Publish(ctx context.Context, ev q.ContentChangedEvent) error
	Close() error
}

// ErrBrokerBackoff is returned while the publisher waits before dialing
// the broker again after a failed attempt.
var ErrBrokerBackoff = errors.New("rabbitmq: broker unavailable, retry pending")

const (
	minDialBackoff = time.Second
	maxDialBackoff = 30 * time.Second
)

// NewPublisher returns an AMQP publisher when the queue is enabled and a
// no-op one otherwise.
func NewPublisher(cfg config.QueueConfig) Publisher {
	if !cfg.Enabled {
		return NopPublisher{}
	}
	return &AMQPPublisher{url: cfg.URL, queue: cfg.QueueName, now: time.Now}
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, q.ContentChangedEvent) error { return nil }
func (NopPublisher) Close() error                                        { return nil }

// AMQPPublisher publishes persistent JSON messages to a durable queue on
// the default exchange.  The connection is opened on first use and reopened
// after a failure; failed dials back off exponentially so an unreachable
// broker costs one dial per backoff window, not one per event.
type AMQPPublisher struct {
	url   string
	queue string

	mu      sync.Mutex
	conn    *amqp.Connection
	ch      *amqp.Channel
	backoff time.Duration
	retryAt time.Time
	now     func() time.Time
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()
	if p.now().Before(p.retryAt) {
		return nil, ErrBrokerBackoff
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(2 * time.Second)})
	if err != nil {
		p.failed()
		return nil, errors.Wrap(err, "rabbitmq: dial")
	}
	p.backoff, p.retryAt = 0, time.Time{}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		p.failed()
		return nil, errors.Wrap(err, "rabbitmq: channel open")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		p.failed()
		return nil, errors.Wrap(err, "rabbitmq: queue declare")
	}
	p.conn, p.ch = conn, ch
	return ch, nil
}

// failed pushes the next dial attempt out, doubling the wait each time.
func (p *AMQPPublisher) failed() {
	switch {
	case p.backoff < minDialBackoff:
		p.backoff = minDialBackoff
	case p.backoff < maxDialBackoff:
		p.backoff *= 2
		if p.backoff > maxDialBackoff {
			p.backoff = maxDialBackoff
		}
	}
	p.retryAt = p.now().Add(p.backoff)
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

// Publish sends ev to the content queue.
func (p *AMQPPublisher) Publish(ctx context.Context, ev q.ContentChangedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "rabbitmq: marshal event")
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
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.reset()
		return errors.Wrap(err, "rabbitmq: publish")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}
