//go:build unit

package broadcast_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/infra/broadcast"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(op uuid.UUID, typ event.Type) event.Event {
	return event.New(op, typ, event.ActorOperator, nil, time.Now().UTC())
}

func TestHub(t *testing.T) {
	t.Run("delivers only to the event's operator", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 4)
		opA, opB := uuid.New(), uuid.New()

		subA, err := hub.Subscribe(opA)
		require.NoError(t, err)
		subB, err := hub.Subscribe(opB)
		require.NoError(t, err)

		hub.Deliver(newEvent(opA, event.TypeDropLaunched))

		select {
		case ev := <-subA.Events():
			assert.Equal(t, event.TypeDropLaunched, ev.Type)
		default:
			t.Fatal("subscriber A did not receive the event")
		}
		select {
		case ev := <-subB.Events():
			t.Fatalf("subscriber B received %s", ev.Type)
		default:
		}
	})

	t.Run("keeps publish order", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 8)
		op := uuid.New()
		sub, err := hub.Subscribe(op)
		require.NoError(t, err)

		types := []event.Type{event.TypeDropLaunched, event.TypeClaimReceived, event.TypeClaimConfirmed, event.TypeDropFilled}
		for _, typ := range types {
			hub.Deliver(newEvent(op, typ))
		}
		for _, want := range types {
			assert.Equal(t, want, (<-sub.Events()).Type)
		}
	})

	t.Run("drops a slow subscriber without blocking", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 1)
		op := uuid.New()
		slow, err := hub.Subscribe(op)
		require.NoError(t, err)

		hub.Deliver(newEvent(op, event.TypeDropLaunched))
		hub.Deliver(newEvent(op, event.TypeDropExtended))

		assert.Equal(t, 0, hub.SubscriberCount(op))
		first, ok := <-slow.Events()
		require.True(t, ok)
		assert.Equal(t, event.TypeDropLaunched, first.Type)
		_, ok = <-slow.Events()
		assert.False(t, ok)
	})

	t.Run("unsubscribe twice is safe", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 1)
		op := uuid.New()
		sub, err := hub.Subscribe(op)
		require.NoError(t, err)

		sub.Close()
		sub.Close()
		assert.Equal(t, 0, hub.SubscriberCount(op))
	})

	t.Run("close ends subscriptions and rejects new ones", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 1)
		op := uuid.New()
		sub, err := hub.Subscribe(op)
		require.NoError(t, err)

		hub.Close()
		_, ok := <-sub.Events()
		assert.False(t, ok)

		_, err = hub.Subscribe(op)
		assert.ErrorIs(t, err, broadcast.ErrHubClosed)
		sub.Close()
	})

	t.Run("concurrent deliver and unsubscribe", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 2)
		op := uuid.New()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			sub, err := hub.Subscribe(op)
			require.NoError(t, err)
			wg.Add(2)
			go func() {
				defer wg.Done()
				hub.Deliver(newEvent(op, event.TypeClaimReceived))
			}()
			go func() {
				defer wg.Done()
				sub.Close()
			}()
		}
		wg.Wait()
		assert.Equal(t, 0, hub.SubscriberCount(op))
	})
}

type fakeRelay struct {
	err  error
	sent []event.Event
}

func (r *fakeRelay) Publish(_ context.Context, e event.Event) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, e)
	return nil
}

type recordingSink struct {
	events []event.Event
}

func (s *recordingSink) Enqueue(e event.Event) {
	s.events = append(s.events, e)
}

func TestEmitter(t *testing.T) {
	op := uuid.New()
	batch := []event.Event{newEvent(op, event.TypeClaimConfirmed), newEvent(op, event.TypeDropFilled)}

	t.Run("delivers locally without relay", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 4)
		sub, err := hub.Subscribe(op)
		require.NoError(t, err)
		sink := &recordingSink{}

		broadcast.NewEmitter(hub, nil, sink, nil).Publish(context.Background(), batch)

		assert.Equal(t, event.TypeClaimConfirmed, (<-sub.Events()).Type)
		assert.Equal(t, event.TypeDropFilled, (<-sub.Events()).Type)
		assert.Len(t, sink.events, 2)
	})

	t.Run("hands events to the relay", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 4)
		sub, err := hub.Subscribe(op)
		require.NoError(t, err)
		relay := &fakeRelay{}

		broadcast.NewEmitter(hub, relay, nil, nil).Publish(context.Background(), batch)

		assert.Len(t, relay.sent, 2)
		select {
		case <-sub.Events():
			t.Fatal("relay path must not deliver locally")
		default:
		}
	})

	t.Run("falls back to local delivery when relay fails", func(t *testing.T) {
		hub := broadcast.NewHub(nil, 4)
		sub, err := hub.Subscribe(op)
		require.NoError(t, err)
		relay := &fakeRelay{err: errors.New("connection refused")}

		broadcast.NewEmitter(hub, relay, nil, nil).Publish(context.Background(), batch[:1])

		assert.Equal(t, event.TypeClaimConfirmed, (<-sub.Events()).Type)
	})
}
