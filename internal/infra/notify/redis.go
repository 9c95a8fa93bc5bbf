package notify

import (
	"context"
	"fmt"

	"hotel-booking/internal/domain/support"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher forwards events to a Redis pub/sub channel for other instances.
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Handle(ctx context.Context, ev support.MessageAppended) error {
	body, err := encode(ev)
	if err != nil {
		return fmt.Errorf("redis: marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("redis: publish to %s: %w", p.channel, err)
	}
	return nil
}
