package commands

import (
	"context"
	"time"

	domdrop "drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

// Actor is the authenticated operator performing a command.
type Actor struct {
	OperatorID   uuid.UUID
	BusinessName string
}

func (a Actor) Name() string {
	if a.BusinessName == "" {
		return event.ActorOperator
	}
	return a.BusinessName
}

// outbox holds the events of one transaction attempt; reset at the start of each attempt.
type outbox struct {
	events []event.Event
}

func (o *outbox) reset() {
	o.events = o.events[:0]
}

func (o *outbox) append(ctx context.Context, tx shared.Tx, e event.Event) error {
	if err := tx.Events().Append(ctx, tx.DB(), e); err != nil {
		return err
	}
	o.events = append(o.events, e)
	return nil
}

func (o *outbox) publish(ctx context.Context, pub shared.EventPublisher) {
	if pub == nil || len(o.events) == 0 {
		return
	}
	out := make([]event.Event, len(o.events))
	copy(out, o.events)
	pub.Publish(ctx, out)
}

// expireLocked flips a locked live drop to expired and cascades its pending
// claims. It is a no-op when another transaction already moved the drop.
func expireLocked(ctx context.Context, tx shared.Tx, box *outbox, d *domdrop.Drop, now time.Time) error {
	flipped, err := tx.Drops().MarkExpired(ctx, tx.DB(), d.ID())
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}
	if _, err := tx.Claims().ExpirePending(ctx, tx.DB(), []uuid.UUID{d.ID()}); err != nil {
		return err
	}
	_ = d.Expire()
	return box.append(ctx, tx, event.New(d.OperatorID(), event.TypeDropExpired, event.ActorSystem,
		event.Payload{"drop_id": d.ID().String()}, now))
}

func fillLocked(ctx context.Context, tx shared.Tx, box *outbox, d *domdrop.Drop, actor string, now time.Time) error {
	flipped, err := tx.Drops().MarkFilled(ctx, tx.DB(), d.ID())
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}
	_ = d.Fill()
	return box.append(ctx, tx, event.New(d.OperatorID(), event.TypeDropFilled, actor,
		event.Payload{"drop_id": d.ID().String()}, now))
}

// settleUnavailable turns a failed drop precondition into the command result.
// A lapsed deadline is committed as an expiry before the caller sees
// ErrExpired; any other reason rolls back.
func settleUnavailable(ctx context.Context, tx shared.Tx, box *outbox, d *domdrop.Drop, now time.Time, reason error, outcome *error) error {
	if !errs.Is(reason, domdrop.ErrExpired) {
		return reason
	}
	*outcome = reason
	return expireLocked(ctx, tx, box, d, now)
}
