// Package notify forwards committed operator events to downstream consumers.
package notify

import "drop-arbiter/internal/domain/event"

// Sink accepts events without blocking the caller.
type Sink interface {
	Enqueue(e event.Event)
}

type NopSink struct{}

func (NopSink) Enqueue(event.Event) {}
