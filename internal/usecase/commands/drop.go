package commands

import (
	"context"
	"log/slog"

	domdrop "drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/internal/pkg/patch"
	"drop-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultPriceCents = 0

type CreateDropInput struct {
	OfferingID      uuid.UUID
	ScheduleBlockID *uuid.UUID
	Title           string
	SpotsAvailable  *int
	PriceCents      *int
	TimerSeconds    *int
}

type DropCommands interface {
	CreateDrop(ctx context.Context, actor Actor, in CreateDropInput) (*domdrop.Drop, error)
	// ExtendDrop falls back to the configured extension when additionalSeconds is absent or non-positive.
	ExtendDrop(ctx context.Context, actor Actor, dropID uuid.UUID, additionalSeconds *int) (*domdrop.Drop, error)
	// CancelDrop serves both the cancel and stop actions.
	CancelDrop(ctx context.Context, actor Actor, dropID uuid.UUID) (*domdrop.Drop, error)
	// ExpireDue expires every live drop past its deadline.
	ExpireDue(ctx context.Context) ([]shared.ExpiredDrop, error)
}

type dropCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	defaults  config.DropConfig
}

func NewDropCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg config.Config) DropCommands {
	return &dropCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		defaults:  cfg.Drop,
	}
}

func (uc *dropCommandsImpl) CreateDrop(ctx context.Context, actor Actor, in CreateDropInput) (*domdrop.Drop, error) {
	if in.SpotsAvailable == nil {
		return nil, domdrop.ErrSpotsRequired
	}
	params := domdrop.NewDropParams{
		OperatorID:      actor.OperatorID,
		OfferingID:      in.OfferingID,
		ScheduleBlockID: in.ScheduleBlockID,
		Title:           in.Title,
		SpotsAvailable:  toInt32(*in.SpotsAvailable),
		PriceCents:      toInt32(patch.Coalesce(in.PriceCents, defaultPriceCents)),
		TimerSeconds:    toInt32(patch.Coalesce(in.TimerSeconds, uc.defaults.DefaultTimerSeconds)),
	}

	var (
		box     outbox
		created *domdrop.Drop
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		now := uc.clock.Now()

		d, derr := domdrop.NewDrop(params, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Drops().Create(ctx, tx.DB(), d); derr != nil {
			return derr
		}
		created = d
		return box.append(ctx, tx, event.New(actor.OperatorID, event.TypeDropLaunched, actor.Name(), event.Payload{
			"drop_id":         d.ID().String(),
			"title":           d.Title(),
			"spots_available": d.SpotsAvailable(),
			"price_cents":     d.PriceCents(),
		}, now))
	})
	if err != nil {
		return nil, err
	}

	box.publish(ctx, uc.publisher)
	return created, nil
}

func (uc *dropCommandsImpl) ExtendDrop(ctx context.Context, actor Actor, dropID uuid.UUID, additionalSeconds *int) (*domdrop.Drop, error) {
	seconds := toInt32(patch.PositiveOr(additionalSeconds, uc.defaults.DefaultExtendSeconds))

	var (
		box      outbox
		outcome  error
		extended *domdrop.Drop
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		outcome = nil
		now := uc.clock.Now()

		d, derr := lockOwnedDrop(ctx, tx, dropID, actor.OperatorID)
		if derr != nil {
			return derr
		}
		if d.IsDueAt(now) {
			outcome = domdrop.ErrNotExtendable
			return expireLocked(ctx, tx, &box, d, now)
		}
		if derr = d.Extend(seconds); derr != nil {
			return derr
		}

		updated, ok, derr := tx.Drops().Extend(ctx, tx.DB(), dropID, actor.OperatorID, seconds)
		if derr != nil {
			return derr
		}
		if !ok {
			return domdrop.ErrNotExtendable
		}
		extended = updated
		return box.append(ctx, tx, event.New(actor.OperatorID, event.TypeDropExtended, actor.Name(), event.Payload{
			"drop_id":            dropID.String(),
			"additional_seconds": seconds,
		}, now))
	})
	if err != nil {
		return nil, err
	}

	box.publish(ctx, uc.publisher)
	if outcome != nil {
		return nil, outcome
	}
	return extended, nil
}

func (uc *dropCommandsImpl) CancelDrop(ctx context.Context, actor Actor, dropID uuid.UUID) (*domdrop.Drop, error) {
	var (
		box       outbox
		outcome   error
		cancelled *domdrop.Drop
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		outcome = nil
		now := uc.clock.Now()

		d, derr := lockOwnedDrop(ctx, tx, dropID, actor.OperatorID)
		if derr != nil {
			return derr
		}
		if d.IsDueAt(now) {
			outcome = domdrop.ErrNotCancellable
			return expireLocked(ctx, tx, &box, d, now)
		}
		if derr = d.Cancel(); derr != nil {
			return derr
		}

		ok, derr := tx.Drops().Cancel(ctx, tx.DB(), dropID, actor.OperatorID)
		if derr != nil {
			return derr
		}
		if !ok {
			return domdrop.ErrNotCancellable
		}
		if _, derr = tx.Claims().ExpirePending(ctx, tx.DB(), []uuid.UUID{dropID}); derr != nil {
			return derr
		}
		cancelled = d
		return box.append(ctx, tx, event.New(actor.OperatorID, event.TypeDropCancelled, actor.Name(), event.Payload{
			"drop_id": dropID.String(),
		}, now))
	})
	if err != nil {
		return nil, err
	}

	box.publish(ctx, uc.publisher)
	if outcome != nil {
		return nil, outcome
	}
	return cancelled, nil
}

func (uc *dropCommandsImpl) ExpireDue(ctx context.Context) ([]shared.ExpiredDrop, error) {
	var (
		box     outbox
		expired []shared.ExpiredDrop
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		now := uc.clock.Now()

		due, derr := tx.Drops().ExpireDue(ctx, tx.DB(), now)
		if derr != nil {
			return derr
		}
		expired = due
		if len(due) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(due))
		for _, d := range due {
			ids = append(ids, d.ID)
		}
		if _, derr = tx.Claims().ExpirePending(ctx, tx.DB(), ids); derr != nil {
			return derr
		}
		for _, d := range due {
			e := event.New(d.OperatorID, event.TypeDropExpired, event.ActorSystem, event.Payload{"drop_id": d.ID.String()}, now)
			if derr = box.append(ctx, tx, e); derr != nil {
				return derr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(expired) > 0 {
		slog.InfoContext(ctx, "expired due drops", "count", len(expired))
	}
	box.publish(ctx, uc.publisher)
	return expired, nil
}

func lockOwnedDrop(ctx context.Context, tx shared.Tx, dropID, operatorID uuid.UUID) (*domdrop.Drop, error) {
	d, err := tx.Drops().LockOwned(ctx, tx.DB(), dropID, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, domdrop.ErrNotFound
		}
		return nil, errs.Wrap(err, "lock drop")
	}
	return d, nil
}

// toInt32 clamps request integers; out-of-range values fail domain validation.
func toInt32(v int) int32 {
	switch {
	case v > maxInt32:
		return maxInt32
	case v < minInt32:
		return minInt32
	default:
		return int32(v) // #nosec G115 -- bounds checked above
	}
}

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)
