package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type PublisherConfig struct {
	URL      string
	Exchange string
	// Stamped on every message so consumers can tell which
	// service produced a booking or payment event.
	AppID string
}

// Publisher emits booking and payment lifecycle events on a topic
// exchange. Messages are persistent: a broker restart must not drop
// a payment.paid that the notify worker has not seen yet.
type Publisher struct {
	cfg  PublisherConfig
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	return &Publisher{cfg: cfg, conn: conn, ch: ch}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", key, err)
	}
	err = p.ch.PublishWithContext(ctx, p.cfg.Exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		AppId:        p.cfg.AppID,
		Body:         b,
	})
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", key, p.cfg.Exchange, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
