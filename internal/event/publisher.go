// Package event publishes ledger change notifications over AMQP.
//
// Publishing is best-effort: the write that triggered an event has already
// committed, so a broker failure is logged and swallowed rather than bubbled
// up to the caller. Consumers (reminder bots, exports) declare and bind their
// own queues against the topic exchange.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// Routing keys for the topic exchange.
const (
	KeyExpenseCreated     = "expense.created"
	KeySettlementRecorded = "settlement.recorded"
)

// Publisher emits ledger events to a durable topic exchange.
type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher dials the broker and declares the exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// ExpenseCreated publishes an expense.created event.
func (p *Publisher) ExpenseCreated(ctx context.Context, msg *ExpenseCreatedMessage) error {
	return p.publish(ctx, KeyExpenseCreated, msg)
}

// SettlementRecorded publishes a settlement.recorded event.
func (p *Publisher) SettlementRecorded(ctx context.Context, msg *SettlementRecordedMessage) error {
	return p.publish(ctx, KeySettlementRecorded, msg)
}

func (p *Publisher) publish(ctx context.Context, key string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", key, err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s event: %w", key, err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("close channel: %w", err)
	}
	return p.conn.Close()
}
