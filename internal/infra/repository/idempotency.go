package repository

import (
	"context"
	"time"

	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	InsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

// IdempotencyRepository stores cached responses on the pool, outside any
// business transaction.
type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string, now time.Time) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{
		Key:       key,
		ExpiresAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:          row.Key,
		StatusCode:   int(row.StatusCode),
		ResponseBody: row.ResponseBody,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Save(ctx context.Context, rec shared.IdempotencyRecord) error {
	params := sqlc.InsertIdempotencyKeyParams{
		Key:          rec.Key,
		StatusCode:   int32(rec.StatusCode), // #nosec G115 -- HTTP status codes fit in int32
		ResponseBody: rec.ResponseBody,
		CreatedAt:    pgconv.TimeToPgtype(rec.CreatedAt),
		ExpiresAt:    pgconv.TimeToPgtype(rec.ExpiresAt),
	}
	// zero rows means a concurrent request stored its response first
	if _, err := r.queries.InsertIdempotencyKey(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to save idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
