package repository

import (
	"context"
	"time"

	"drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/infra/repository/converter"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DropWriteQueries interface {
	CreateDrop(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDropParams) (sqlc.Drops, error)
	GetDropForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Drops, error)
	GetOwnedDropForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOwnedDropForUpdateParams) (sqlc.Drops, error)
	MarkDropExpired(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	MarkDropFilled(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CancelDrop(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelDropParams) (int64, error)
	ExtendDrop(ctx context.Context, db sqlc.DBTX, arg sqlc.ExtendDropParams) (sqlc.Drops, error)
	ExpireDueDrops(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) ([]sqlc.ExpireDueDropsRow, error)
}

type DropRepository struct {
	queries DropWriteQueries
	db      sqlc.DBTX
}

func NewDropRepository(queries DropWriteQueries, db sqlc.DBTX) *DropRepository {
	return &DropRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DropRepository) Create(ctx context.Context, tx sqlc.DBTX, d *drop.Drop) error {
	if _, err := r.queries.CreateDrop(ctx, tx, converter.DropToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create drop", err)
	}
	return nil
}

func (r *DropRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*drop.Drop, error) {
	row, err := r.queries.GetDropForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock drop", err)
	}
	return converter.DropFromRow(row), nil
}

func (r *DropRepository) LockOwned(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID) (*drop.Drop, error) {
	row, err := r.queries.GetOwnedDropForUpdate(ctx, tx, sqlc.GetOwnedDropForUpdateParams{ID: id, OperatorID: operatorID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock owned drop", err)
	}
	return converter.DropFromRow(row), nil
}

func (r *DropRepository) MarkExpired(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.MarkDropExpired(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark drop expired", err)
	}
	return n > 0, nil
}

func (r *DropRepository) MarkFilled(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.MarkDropFilled(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark drop filled", err)
	}
	return n > 0, nil
}

func (r *DropRepository) Cancel(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID) (bool, error) {
	n, err := r.queries.CancelDrop(ctx, tx, sqlc.CancelDropParams{ID: id, OperatorID: operatorID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel drop", err)
	}
	return n > 0, nil
}

// Extend reports false without error when the drop is no longer live.
func (r *DropRepository) Extend(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID, seconds int32) (*drop.Drop, bool, error) {
	row, err := r.queries.ExtendDrop(ctx, tx, sqlc.ExtendDropParams{
		Seconds:    seconds,
		ID:         id,
		OperatorID: operatorID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to extend drop", err)
	}
	return converter.DropFromRow(row), true, nil
}

func (r *DropRepository) ExpireDue(ctx context.Context, tx sqlc.DBTX, now time.Time) ([]shared.ExpiredDrop, error) {
	rows, err := r.queries.ExpireDueDrops(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire due drops", err)
	}
	expired := make([]shared.ExpiredDrop, 0, len(rows))
	for _, row := range rows {
		expired = append(expired, shared.ExpiredDrop{ID: row.ID, OperatorID: row.OperatorID})
	}
	return expired, nil
}
