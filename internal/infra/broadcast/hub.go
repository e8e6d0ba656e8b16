// Package broadcast fans committed operator events out to live subscribers.
package broadcast

import (
	"log/slog"
	"sync"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/pkg/errs"

	"github.com/google/uuid"
)

const DefaultSubscriberBuffer = 64

var ErrHubClosed = errs.New("event hub closed")

// Subscription receives the events of one operator until it is closed or
// dropped for falling behind. A dropped subscription's channel is closed.
type Subscription struct {
	operatorID uuid.UUID
	ch         chan event.Event
	hub        *Hub
}

func (s *Subscription) Events() <-chan event.Event {
	return s.ch
}

func (s *Subscription) OperatorID() uuid.UUID {
	return s.operatorID
}

func (s *Subscription) Close() {
	s.hub.Unsubscribe(s)
}

// Hub is the per-process subscriber registry. Delivery holds one mutex, so
// events of an operator reach each subscriber in publish order.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*Subscription]struct{}
	buffer int
	closed bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[uuid.UUID]map[*Subscription]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func (h *Hub) Subscribe(operatorID uuid.UUID) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	sub := &Subscription{
		operatorID: operatorID,
		ch:         make(chan event.Event, h.buffer),
		hub:        h,
	}
	set, ok := h.subs[operatorID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[operatorID] = set
	}
	set[sub] = struct{}{}
	return sub, nil
}

// Unsubscribe is safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

// Deliver never blocks: a subscriber with a full buffer is dropped.
func (h *Hub) Deliver(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[e.OperatorID] {
		select {
		case sub.ch <- e:
		default:
			h.logger.Warn("dropping slow event subscriber",
				"operator_id", e.OperatorID.String(),
				"event_type", string(e.Type))
			h.removeLocked(sub)
		}
	}
}

func (h *Hub) SubscriberCount(operatorID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[operatorID])
}

// Close ends every subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, set := range h.subs {
		for sub := range set {
			close(sub.ch)
		}
	}
	h.subs = make(map[uuid.UUID]map[*Subscription]struct{})
}

func (h *Hub) removeLocked(sub *Subscription) {
	set, ok := h.subs[sub.operatorID]
	if !ok {
		return
	}
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	close(sub.ch)
	if len(set) == 0 {
		delete(h.subs, sub.operatorID)
	}
}
