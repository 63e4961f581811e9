package mq

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

type connection interface {
	Channel() (channel, error)
	IsClosed() bool
	Close() error
}

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Confirm(noWait bool) error
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (confirmation, error)
	Close() error
}

type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type dialFunc func() (connection, error)

// Publisher emits booking notifications to a topic exchange. The routing key
// is the notification topic, e.g. booking.created. The channel runs in
// confirm mode: a publish returns only after the broker acks it. A channel or
// connection closed by the broker is reopened on the next publish.
type Publisher struct {
	mu       sync.Mutex
	dial     dialFunc
	exchange string
	logger   *slog.Logger

	conn   connection
	ch     channel
	closed chan *amqp.Error
}

var _ shared.Emitter = (*Publisher)(nil)

func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	dial := func() (connection, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, err
		}
		return amqpConnection{conn}, nil
	}
	return newPublisher(dial, exchange, logger)
}

func newPublisher(dial dialFunc, exchange string, logger *slog.Logger) (*Publisher, error) {
	p := &Publisher{dial: dial, exchange: exchange, logger: logger}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connect(); err != nil {
		if p.conn != nil {
			_ = p.conn.Close()
		}
		return nil, err
	}
	return p, nil
}

// connect opens a confirm-mode channel, redialing first when the connection
// is gone. Callers hold mu.
func (p *Publisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := p.dial()
		if err != nil {
			return errs.Wrap(err, "dial rabbitmq")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return errs.Wrap(err, "declare exchange")
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return errs.Wrap(err, "enable publisher confirms")
	}

	p.ch = ch
	p.closed = ch.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

// ensureChannel reopens the channel if the broker closed it since the last
// publish. Callers hold mu.
func (p *Publisher) ensureChannel() error {
	if p.ch != nil {
		select {
		case amqpErr := <-p.closed:
			attrs := []any{slog.String("exchange", p.exchange)}
			if amqpErr != nil {
				attrs = append(attrs, slog.String("error", amqpErr.Error()))
			}
			p.logger.Warn("amqp channel closed, reopening", attrs...)
		default:
			return nil
		}
	}
	p.ch = nil
	return p.connect()
}

func (p *Publisher) Emit(ctx context.Context, topic string, n shared.Notification) error {
	return p.PublishJSON(ctx, topic, n)
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", key)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "await confirm for %s", key)
	}
	if !acked {
		return errs.Newf("broker rejected %s", key)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn.Close()
	}
	return nil
}

type amqpConnection struct {
	*amqp.Connection
}

func (c amqpConnection) Channel() (channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}
	return amqpChannel{ch}, nil
}

type amqpChannel struct {
	*amqp.Channel
}

func (c amqpChannel) PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.Channel.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		return nil, err
	}
	return dc, nil
}
