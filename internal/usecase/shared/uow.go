package shared

import (
	"context"
	"time"

	"drop-arbiter/internal/domain/claim"
	"drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/domain/operator"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories. They are only reachable inside Within.
type Tx interface {
	Drops() DropRepository
	Claims() ClaimRepository
	Events() EventRepository
	Operators() OperatorRepository
	DB() sqlc.DBTX
}

// ExpiredDrop identifies a drop flipped to expired by a sweep.
type ExpiredDrop struct {
	ID         uuid.UUID
	OperatorID uuid.UUID
}

type DropRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, d *drop.Drop) error
	// LockByID takes the row lock; NotFound kind when absent.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*drop.Drop, error)
	LockOwned(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID) (*drop.Drop, error)
	// Conditional transitions report false when the drop already left live.
	MarkExpired(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	MarkFilled(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error)
	Cancel(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID) (bool, error)
	Extend(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID, seconds int32) (*drop.Drop, bool, error)
	ExpireDue(ctx context.Context, tx sqlc.DBTX, now time.Time) ([]ExpiredDrop, error)
}

type ClaimRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *claim.Claim) error
	// LockWithDrop locks the claim and its drop; NotFound kind when absent or not owned.
	LockWithDrop(ctx context.Context, tx sqlc.DBTX, claimID, operatorID uuid.UUID) (*claim.Claim, *drop.Drop, error)
	CountConfirmed(ctx context.Context, tx sqlc.DBTX, dropID uuid.UUID) (int32, error)
	Confirm(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (*claim.Claim, error)
	// Reject returns NotFound kind when no pending claim of the operator matched.
	Reject(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID) (*claim.Claim, error)
	ExpirePending(ctx context.Context, tx sqlc.DBTX, dropIDs []uuid.UUID) (int64, error)
}

type EventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, e event.Event) error
}

type OperatorRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, op *operator.Operator) error
}

// IdempotencyRecord is a cached response replayed verbatim.
type IdempotencyRecord struct {
	Key          string
	StatusCode   int
	ResponseBody []byte
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// IdempotencyStore runs outside business transactions.
type IdempotencyStore interface {
	// Get returns nil, nil when the key is unknown or expired.
	Get(ctx context.Context, key string, now time.Time) (*IdempotencyRecord, error)
	// Save keeps the first stored response; later saves for the same key are ignored.
	Save(ctx context.Context, rec IdempotencyRecord) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// EventPublisher fans committed events out to live subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, events []event.Event)
}
