package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ConsumerConfig struct {
	URL      string
	Exchange string
	Queue    string
	Bindings []string
	Prefetch int
	// Dead-letter setup for deliveries that keep failing.
	UseDLX   bool
	DLXName  string
	DLXQueue string
}

type Consumer struct {
	cfg  ConsumerConfig
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
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
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	args := amqp.Table{}
	if cfg.UseDLX {
		args["x-dead-letter-exchange"] = cfg.DLXName
	}
	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, args)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	for _, rk := range cfg.Bindings {
		if err := ch.QueueBind(q.Name, rk, cfg.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("bind %s: %w", rk, err)
		}
	}

	if cfg.UseDLX {
		if err := ch.ExchangeDeclare(cfg.DLXName, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("declare dlx: %w", err)
		}
		if _, err := ch.QueueDeclare(cfg.DLXQueue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("declare dlq: %w", err)
		}
		if err := ch.QueueBind(cfg.DLXQueue, "#", cfg.DLXName, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("bind dlq: %w", err)
		}
	}

	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 8
	}
	if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}

	return &Consumer{cfg: cfg, conn: conn, ch: ch}, nil
}

func (c *Consumer) Deliveries(ctx context.Context) (<-chan amqp.Delivery, error) {
	return c.ch.ConsumeWithContext(ctx, c.cfg.Queue, "", false, false, false, false, nil)
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
