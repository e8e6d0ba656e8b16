package uow

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"drop-arbiter/internal/infra/repository"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy bounds how often a transaction aborted by a serialization
// failure or deadlock is rerun. The callback runs again from scratch, so it
// must not keep state from a failed attempt.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 50 * time.Millisecond}

// backoff doubles per attempt with up to 20% jitter so contending confirms
// on one drop do not retry in lockstep.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + time.Duration(rand.Int63n(int64(wait)/5+1))
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy retryPolicy
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: defaultRetryPolicy,
		logger: logger,
	}
}

// Within runs fn at ReadCommitted. Arbitration relies on row locks taken
// inside fn (SELECT ... FOR UPDATE), not on the isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt == u.policy.maxRetries {
			u.logger.ErrorContext(ctx, "transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		wait := u.policy.backoff(attempt)
		u.logger.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns exactly one pgx transaction; the deferred rollback is a no-op
// after a successful commit.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	dropRepo     shared.DropRepository
	claimRepo    shared.ClaimRepository
	eventRepo    shared.EventRepository
	operatorRepo shared.OperatorRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Drops() shared.DropRepository {
	if t.dropRepo == nil {
		t.dropRepo = repository.NewDropRepository(t.uow.q, t.dbtx)
	}
	return t.dropRepo
}

func (t *pgTx) Claims() shared.ClaimRepository {
	if t.claimRepo == nil {
		t.claimRepo = repository.NewClaimRepository(t.uow.q, t.dbtx)
	}
	return t.claimRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Operators() shared.OperatorRepository {
	if t.operatorRepo == nil {
		t.operatorRepo = repository.NewOperatorRepository(t.uow.q, t.dbtx)
	}
	return t.operatorRepo
}
