package readmodel

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/naijamart/storefront/internal/config"
	"github.com/naijamart/storefront/internal/usecase"
)

// Module wires the redis client and the read-model publisher.
var Module = fx.Options(
	fx.Provide(newRedisClient),
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type redisParams struct {
	fx.In

	Config *config.Config
}

func newRedisClient(p redisParams) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
}

type publisherParams struct {
	fx.In

	Client *redis.Client
	Logger *slog.Logger
}

func newPublisher(p publisherParams) usecase.ReadModelPublisher {
	return NewPublisher(p.Client, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// The read model is an optimization; starting without it
				// keeps checkout and settlement available.
				logger.Warn("redis unavailable, read model events disabled",
					slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
