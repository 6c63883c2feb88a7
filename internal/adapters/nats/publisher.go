package natsadapter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// Publisher implements ports.EventPublisher on a core NATS connection.
type Publisher struct {
	conn    *nats.Conn
	subject string
	timeout time.Duration
}

// NewPublisher connects to NATS. Events are published on subject.
func NewPublisher(url, subject, name string, timeout time.Duration) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.MaxReconnects(2),
		nats.ReconnectWait(500*time.Millisecond),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "nats connect %s", url)
	}
	return &Publisher{conn: conn, subject: subject, timeout: timeout}, nil
}

// PublishPosterGenerated publishes the event as JSON and waits until the
// server has received it.
func (p *Publisher) PublishPosterGenerated(ctx context.Context, event *domain.PosterEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal poster event")
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return errors.Wrapf(err, "publish %s", p.subject)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.Wrap(err, "flush nats connection")
	}
	return nil
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}
