package broadcast

import (
	"context"
	"log/slog"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/infra/notify"
)

// Relay carries events to the hubs of every process.
type Relay interface {
	Publish(ctx context.Context, e event.Event) error
}

// Emitter publishes committed events. It is only called after commit.
type Emitter struct {
	hub    *Hub
	relay  Relay
	sink   notify.Sink
	logger *slog.Logger
}

// NewEmitter delivers to the local hub when relay is nil.
func NewEmitter(hub *Hub, relay Relay, sink notify.Sink, logger *slog.Logger) *Emitter {
	if sink == nil {
		sink = notify.NopSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		hub:    hub,
		relay:  relay,
		sink:   sink,
		logger: logger,
	}
}

func (e *Emitter) Publish(ctx context.Context, events []event.Event) {
	for _, ev := range events {
		e.deliver(ctx, ev)
		e.sink.Enqueue(ev)
	}
}

func (e *Emitter) deliver(ctx context.Context, ev event.Event) {
	if e.relay == nil {
		e.hub.Deliver(ev)
		return
	}
	if err := e.relay.Publish(ctx, ev); err != nil {
		// local subscribers still get the event
		e.logger.WarnContext(ctx, "event relay publish failed",
			"operator_id", ev.OperatorID.String(),
			"event_type", string(ev.Type),
			"error", err.Error())
		e.hub.Deliver(ev)
	}
}
