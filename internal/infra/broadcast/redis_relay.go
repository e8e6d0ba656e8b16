package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisRelay publishes events on one channel per operator and feeds every
// message it receives into the local hub, so all processes see all events.
type RedisRelay struct {
	rdb    redis.UniversalClient
	prefix string
	hub    *Hub
	logger *slog.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

func NewRedisRelay(rdb redis.UniversalClient, prefix string, hub *Hub, logger *slog.Logger) *RedisRelay {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisRelay{
		rdb:    rdb,
		prefix: strings.Trim(prefix, ":"),
		hub:    hub,
		logger: logger,
	}
}

func (r *RedisRelay) Channel(operatorID uuid.UUID) string {
	return r.prefix + ":" + operatorID.String()
}

func (r *RedisRelay) Publish(ctx context.Context, e event.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}
	if err := r.rdb.Publish(ctx, r.Channel(e.OperatorID), payload).Err(); err != nil {
		return errs.Wrap(err, "redis publish")
	}
	return nil
}

// Start subscribes to every operator channel and returns once the
// subscription is confirmed.
func (r *RedisRelay) Start(ctx context.Context) error {
	pubsub := r.rdb.PSubscribe(ctx, r.prefix+":*")
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return errs.Wrap(err, "redis psubscribe")
	}

	r.mu.Lock()
	r.pubsub = pubsub
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	go func() {
		defer close(done)
		for msg := range pubsub.Channel() {
			ev, err := decodeRelayMessage(msg.Payload)
			if err != nil {
				r.logger.Warn("discarding malformed relay message",
					"channel", msg.Channel,
					"error", err.Error())
				continue
			}
			r.hub.Deliver(ev)
		}
	}()
	return nil
}

func (r *RedisRelay) Stop(ctx context.Context) error {
	r.mu.Lock()
	pubsub, done := r.pubsub, r.done
	r.pubsub = nil
	r.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	if err := pubsub.Close(); err != nil {
		return errs.Wrap(err, "redis pubsub close")
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func decodeRelayMessage(payload string) (event.Event, error) {
	var ev event.Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return event.Event{}, errs.Wrap(err, "decode event")
	}
	if ev.OperatorID == uuid.Nil || ev.Type == "" {
		return event.Event{}, errs.New("relay message without operator or type")
	}
	return ev, nil
}
