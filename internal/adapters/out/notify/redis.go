// Package notify publishes order lifecycle events to subscribers.
// Publication is fire-and-forget: a failed publish is logged and never
// fails the business operation that produced the event.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"freight/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// eventPayload is the wire format published on the channel.
type eventPayload struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// RedisNotifier publishes events as JSON messages on a Redis pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisNotifier creates a notifier publishing on the given channel.
func NewRedisNotifier(client *redis.Client, channel string, logger *slog.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		logger:  logger.With("component", "redis_notifier"),
	}
}

// Publish sends the event on the configured channel.
// Failures are logged; subscribers are best-effort observers.
func (n *RedisNotifier) Publish(ctx context.Context, event ports.Event) {
	payload, err := json.Marshal(eventPayload{
		Type:    string(event.Type),
		OrderID: event.OrderID.String(),
		Status:  event.Status,
	})
	if err != nil {
		n.logger.Error("failed to encode event",
			"type", event.Type,
			"order_id", event.OrderID.String(),
			"error", err)
		return
	}

	if err = n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.Error("failed to publish event",
			"type", event.Type,
			"order_id", event.OrderID.String(),
			"error", err)
	}
}
