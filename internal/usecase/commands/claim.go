package commands

import (
	"context"

	domclaim "drop-arbiter/internal/domain/claim"
	domdrop "drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitClaimInput struct {
	ClaimantPhone string
	ClaimantName  string
}

type ClaimCommands interface {
	SubmitClaim(ctx context.Context, dropID uuid.UUID, in SubmitClaimInput) (*domclaim.Claim, error)
	ConfirmClaim(ctx context.Context, actor Actor, claimID uuid.UUID) (*domclaim.Claim, error)
	RejectClaim(ctx context.Context, actor Actor, claimID uuid.UUID) (*domclaim.Claim, error)
}

type claimCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewClaimCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) ClaimCommands {
	return &claimCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (uc *claimCommandsImpl) SubmitClaim(ctx context.Context, dropID uuid.UUID, in SubmitClaimInput) (*domclaim.Claim, error) {
	// validate before taking any lock
	if _, err := domclaim.NewClaim(dropID, in.ClaimantPhone, in.ClaimantName, uc.clock.Now()); err != nil {
		return nil, err
	}

	var (
		box     outbox
		outcome error
		created *domclaim.Claim
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		outcome = nil
		now := uc.clock.Now()

		d, derr := tx.Drops().LockByID(ctx, tx.DB(), dropID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return domdrop.ErrNotFound
			}
			return errs.Wrap(derr, "lock drop")
		}
		if derr = d.CheckClaimable(now); derr != nil {
			return settleUnavailable(ctx, tx, &box, d, now, derr, &outcome)
		}

		c, derr := domclaim.NewClaim(dropID, in.ClaimantPhone, in.ClaimantName, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Claims().Create(ctx, tx.DB(), c); derr != nil {
			return derr
		}
		created = c
		return box.append(ctx, tx, event.New(d.OperatorID(), event.TypeClaimReceived, event.ActorCustomer, event.Payload{
			"drop_id":        dropID.String(),
			"claim_id":       c.ID().String(),
			"claimant_phone": c.ClaimantPhone(),
			"claimant_name":  c.ClaimantName(),
		}, now))
	})
	if err != nil {
		return nil, err
	}

	box.publish(ctx, uc.publisher)
	if outcome != nil {
		return nil, outcome
	}
	return created, nil
}

// ConfirmClaim serializes on the drop row lock, so confirmed claims never
// exceed spots_available.
func (uc *claimCommandsImpl) ConfirmClaim(ctx context.Context, actor Actor, claimID uuid.UUID) (*domclaim.Claim, error) {
	var (
		box       outbox
		outcome   error
		confirmed *domclaim.Claim
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		outcome = nil
		now := uc.clock.Now()

		c, d, derr := tx.Claims().LockWithDrop(ctx, tx.DB(), claimID, actor.OperatorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return domclaim.ErrNotFound
			}
			return errs.Wrap(derr, "lock claim")
		}
		if !c.IsPending() {
			return domclaim.ErrNotPending
		}
		if derr = d.CheckConfirmable(now); derr != nil {
			return settleUnavailable(ctx, tx, &box, d, now, derr, &outcome)
		}

		before, derr := tx.Claims().CountConfirmed(ctx, tx.DB(), d.ID())
		if derr != nil {
			return derr
		}
		if d.IsFullWith(before) {
			outcome = domdrop.ErrAlreadyFilled
			return fillLocked(ctx, tx, &box, d, actor.Name(), now)
		}

		updated, derr := tx.Claims().Confirm(ctx, tx.DB(), c.ID(), now)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return domclaim.ErrNotPending
			}
			return derr
		}
		confirmed = updated
		if derr = box.append(ctx, tx, event.New(actor.OperatorID, event.TypeClaimConfirmed, actor.Name(), event.Payload{
			"claim_id":      c.ID().String(),
			"drop_id":       d.ID().String(),
			"claimant_name": c.ClaimantName(),
		}, now)); derr != nil {
			return derr
		}

		after, derr := tx.Claims().CountConfirmed(ctx, tx.DB(), d.ID())
		if derr != nil {
			return derr
		}
		if d.IsFullWith(after) {
			return fillLocked(ctx, tx, &box, d, actor.Name(), now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	box.publish(ctx, uc.publisher)
	if outcome != nil {
		return nil, outcome
	}
	return confirmed, nil
}

func (uc *claimCommandsImpl) RejectClaim(ctx context.Context, actor Actor, claimID uuid.UUID) (*domclaim.Claim, error) {
	var (
		box      outbox
		rejected *domclaim.Claim
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		box.reset()
		now := uc.clock.Now()

		c, derr := tx.Claims().Reject(ctx, tx.DB(), claimID, actor.OperatorID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return domclaim.ErrPendingNotFound
			}
			return derr
		}
		rejected = c
		return box.append(ctx, tx, event.New(actor.OperatorID, event.TypeClaimRejected, actor.Name(), event.Payload{
			"claim_id": c.ID().String(),
			"drop_id":  c.DropID().String(),
		}, now))
	})
	if err != nil {
		return nil, err
	}

	box.publish(ctx, uc.publisher)
	return rejected, nil
}
