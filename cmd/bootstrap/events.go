package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"drop-arbiter/internal/infra/broadcast"
	"drop-arbiter/internal/infra/notify"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewHub,
		NewEventRelay,
		NewEventSink,
		fx.Annotate(
			broadcast.NewEmitter,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewHub(lc fx.Lifecycle, logger *slog.Logger) *broadcast.Hub {
	hub := broadcast.NewHub(logger, broadcast.DefaultSubscriberBuffer)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}

// NewEventRelay returns nil when Redis is not configured, which makes the
// emitter deliver to the local hub only.
func NewEventRelay(lc fx.Lifecycle, cfg config.Config, hub *broadcast.Hub, logger *slog.Logger) (broadcast.Relay, error) {
	if !cfg.Redis.Enabled() {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	relay := broadcast.NewRedisRelay(rdb, cfg.Redis.ChannelPrefix, hub, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis ping: %w", err)
			}
			logger.Info("event relay connected", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.ChannelPrefix)
			return relay.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			stopErr := relay.Stop(ctx)
			if err := rdb.Close(); err != nil && stopErr == nil {
				stopErr = err
			}
			return stopErr
		},
	})
	return relay, nil
}

func NewEventSink(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) notify.Sink {
	if !cfg.Kafka.Enabled() {
		return notify.NopSink{}
	}

	sink := notify.NewKafkaSink(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sink.Start()
			logger.Info("kafka event sink started", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
			return nil
		},
		OnStop: sink.Stop,
	})
	return sink
}
