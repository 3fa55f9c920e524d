package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrChannelNotSet = errors.New("redis channel is empty")

// Publisher sends every game event as JSON to a Redis pub/sub channel.
// Events are fire-and-forget; nothing is stored in Redis.
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher - connects to Redis and checks the connection with PING.
func NewPublisher(ctx context.Context, addr, channel string) (*Publisher, error) {
	if channel == "" {
		return nil, ErrChannelNotSet
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewPublisherFromClient(client, channel), nil
}

func NewPublisherFromClient(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

func (that *Publisher) Notify(ctx context.Context, event usecase.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (that *Publisher) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
