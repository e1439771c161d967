// Package redisadapter relays change signals between service instances over
// Redis Pub/Sub.
package redisadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// NewClient parses a redis:// URL and checks the connection.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// SignalBus implements port.EventPublisher by publishing to a Redis
// channel. Run forwards every message on that channel, including this
// instance's own, into the local hub.
type SignalBus struct {
	client  *redis.Client
	channel string
	local   port.EventPublisher
	logger  *slog.Logger
}

// NewSignalBus creates a bus on channel that delivers into local.
func NewSignalBus(client *redis.Client, channel string, local port.EventPublisher, logger *slog.Logger) *SignalBus {
	return &SignalBus{client: client, channel: channel, local: local, logger: logger}
}

// Publish sends event to every instance.
func (b *SignalBus) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Run subscribes to the channel until ctx is done.
func (b *SignalBus) Run(ctx context.Context) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", b.channel, err)
	}
	b.logger.Info("signal bus subscribed", slog.String("channel", b.channel))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.forward(ctx, msg.Payload)
		}
	}
}

func (b *SignalBus) forward(ctx context.Context, payload string) {
	var event domain.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		b.logger.Warn("dropping malformed signal", slog.Any("error", err))
		return
	}
	if err := b.local.Publish(ctx, event); err != nil {
		b.logger.Warn("local publish failed", slog.Any("error", err))
	}
}
