package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewRedisClient,
		NewHub,
	),
	fx.Invoke(
		RegisterRedisPublisher,
		RegisterAMQPPublisher,
	),
)

// NewRedisClient returns a nil client when REDIS_URL is unset; consumers treat nil as disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	if !cfg.Redis.Enabled() {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewHub(lc fx.Lifecycle, logger *slog.Logger) *notify.Hub {
	hub := notify.NewHub(logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Wait()
			return nil
		},
	})
	return hub
}

func RegisterRedisPublisher(hub *notify.Hub, client redis.UniversalClient, cfg config.Config, logger *slog.Logger) {
	if client == nil {
		return
	}
	pub := notify.NewRedisPublisher(client, cfg.Redis.Channel)
	hub.Subscribe("redis", pub.Handle)
	logger.Info("support events published to redis", "channel", cfg.Redis.Channel)
}

func RegisterAMQPPublisher(lc fx.Lifecycle, hub *notify.Hub, cfg config.Config, logger *slog.Logger) {
	if !cfg.AMQP.Enabled() {
		return
	}

	var unsubscribe func()
	var pub *notify.AMQPPublisher
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var err error
			pub, err = notify.DialAMQP(cfg.AMQP.URL, cfg.AMQP.Queue)
			if err != nil {
				return err
			}
			unsubscribe = hub.Subscribe("amqp", pub.Handle)
			logger.Info("support events published to amqp", "queue", cfg.AMQP.Queue)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}
			if pub != nil {
				return pub.Close()
			}
			return nil
		},
	})
}
