package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	// BuyerEventsExchange is a topic exchange keyed by event type.
	BuyerEventsExchange = "buyer_events"

	// BuyerCacheQueue feeds the cache-warming worker.
	BuyerCacheQueue = "buyer_cache_queue"

	buyerEventsBinding = "buyer.*"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	// Declare the buyer events exchange
	err = channel.ExchangeDeclare(
		BuyerEventsExchange, // name
		"topic",             // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// Publish sends the event with its type as routing key.
func (p *Publisher) Publish(ctx context.Context, event *model.BuyerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		BuyerEventsExchange, // exchange
		event.Type,          // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
