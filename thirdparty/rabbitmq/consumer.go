package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/krishsharda/Buyer-Leads/model"
	"github.com/krishsharda/Buyer-Leads/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer refreshes the buyer cache on every buyer event by calling the
// internal API.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	// Declare the queue
	_, err = channel.QueueDeclare(
		BuyerCacheQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// Bind queue to every buyer event
	err = channel.QueueBind(
		BuyerCacheQueue,
		buyerEventsBinding,
		BuyerEventsExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	c := newHandler(apiURL, apiKey)
	c.conn = conn
	c.channel = channel
	return c, nil
}

func newHandler(apiURL, apiKey string) *Consumer {
	return &Consumer{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		BuyerCacheQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok { // channel closed
					return
				}

				requeue, err := c.handle(ctx, msg.Body)
				if err == nil {
					msg.Ack(false)
					continue
				}
				logger.Error("[Consumer] err handle",
					zap.String("routing_key", msg.RoutingKey),
					zap.Bool("requeue", requeue),
					zap.String("error", err.Error()))
				if requeue {
					msg.Nack(false, true)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

// handle processes one delivery. It reports whether a failed message is
// worth retrying.
func (c *Consumer) handle(ctx context.Context, body []byte) (bool, error) {
	var event model.BuyerEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return false, fmt.Errorf("unmarshal event: %w", err)
	}
	if event.BuyerID == "" {
		return false, fmt.Errorf("event %q without buyer id", event.Type)
	}

	if err := c.callWarmCacheAPI(ctx, event.BuyerID); err != nil {
		return true, err
	}

	logger.Info("[Consumer] buyer cache refreshed",
		zap.String("type", event.Type),
		zap.String("buyer_id", event.BuyerID))
	return false, nil
}

// callWarmCacheAPI treats 4xx as final: a deleted buyer answers 404 once its
// cache entry is gone.
func (c *Consumer) callWarmCacheAPI(ctx context.Context, buyerID string) error {
	endpoint := fmt.Sprintf("%s/internal/v1/buyers/%s/cache", c.apiURL, url.PathEscape(buyerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	// Add authorization header using the API key (internal service key)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("X-Internal-Service", "buyer-cache-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
