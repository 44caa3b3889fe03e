// SPDX-License-Identifier: GPL-3.0-only

// Package events publishes account-lifecycle events to an AMQP topic
// exchange. Publishing is best effort: failures are logged and never fail
// the request that produced the event.
package events

import (
	"context"
	"encoding/json"
	"time"

	"nidhi-server/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	AccountRegistered  = "account.registered"
	AccountLogin       = "account.login"
	BankDetailsAdded   = "account.bank_details.added"
	BankDetailsUpdated = "account.bank_details.updated"
)

type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to AMQP_URL and declares the durable topic exchange
// named by EVENTS_EXCHANGE. When AMQP_URL is unset it returns nil; a nil
// publisher drops events.
func NewPublisher() (*Publisher, error) {
	amqpURL := commons.GetEnv("AMQP_URL")
	if amqpURL == "" {
		commons.Logger.Info("AMQP_URL not set, account event publishing disabled")
		return nil, nil
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	exchange := commons.GetEnv("EVENTS_EXCHANGE", "account.events")
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	commons.Logger.Infof("Account event publisher initialized, exchange: %s", exchange)
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, event Event) {
	if p == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	body, err := json.Marshal(event)
	if err != nil {
		commons.Logger.Error("Failed to serialize account event: ", err)
		return
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		commons.Logger.Errorf("Failed to publish account event %s: %v", routingKey, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if err := p.channel.Close(); err != nil {
		commons.Logger.Error("Failed to close AMQP channel: ", err)
	}
	if err := p.conn.Close(); err != nil {
		commons.Logger.Error("Failed to close AMQP connection: ", err)
	}
}
