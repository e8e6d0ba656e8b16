package repository

import (
	"context"
	"time"

	"drop-arbiter/internal/domain/claim"
	"drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/infra/repository/converter"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClaimWriteQueries interface {
	CreateClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClaimParams) (sqlc.Claims, error)
	GetClaimWithDropForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetClaimWithDropForUpdateParams) (sqlc.GetClaimWithDropForUpdateRow, error)
	CountConfirmedClaims(ctx context.Context, db sqlc.DBTX, dropID uuid.UUID) (int32, error)
	ConfirmClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmClaimParams) (sqlc.Claims, error)
	RejectClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectClaimParams) (sqlc.Claims, error)
	ExpirePendingClaims(ctx context.Context, db sqlc.DBTX, dropIds []uuid.UUID) (int64, error)
}

type ClaimRepository struct {
	queries ClaimWriteQueries
	db      sqlc.DBTX
}

func NewClaimRepository(queries ClaimWriteQueries, db sqlc.DBTX) *ClaimRepository {
	return &ClaimRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClaimRepository) Create(ctx context.Context, tx sqlc.DBTX, c *claim.Claim) error {
	if _, err := r.queries.CreateClaim(ctx, tx, converter.ClaimToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create claim", err)
	}
	return nil
}

func (r *ClaimRepository) LockWithDrop(ctx context.Context, tx sqlc.DBTX, claimID, operatorID uuid.UUID) (*claim.Claim, *drop.Drop, error) {
	row, err := r.queries.GetClaimWithDropForUpdate(ctx, tx, sqlc.GetClaimWithDropForUpdateParams{
		ID:         claimID,
		OperatorID: operatorID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to lock claim", err)
	}
	c, d := converter.ClaimWithDropFromRow(row)
	return c, d, nil
}

func (r *ClaimRepository) CountConfirmed(ctx context.Context, tx sqlc.DBTX, dropID uuid.UUID) (int32, error) {
	n, err := r.queries.CountConfirmedClaims(ctx, tx, dropID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed claims", err)
	}
	return n, nil
}

func (r *ClaimRepository) Confirm(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (*claim.Claim, error) {
	row, err := r.queries.ConfirmClaim(ctx, tx, sqlc.ConfirmClaimParams{
		ID:          id,
		ConfirmedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to confirm claim", err)
	}
	return converter.ClaimFromRow(row), nil
}

func (r *ClaimRepository) Reject(ctx context.Context, tx sqlc.DBTX, id, operatorID uuid.UUID) (*claim.Claim, error) {
	row, err := r.queries.RejectClaim(ctx, tx, sqlc.RejectClaimParams{ID: id, OperatorID: operatorID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to reject claim", err)
	}
	return converter.ClaimFromRow(row), nil
}

func (r *ClaimRepository) ExpirePending(ctx context.Context, tx sqlc.DBTX, dropIDs []uuid.UUID) (int64, error) {
	if len(dropIDs) == 0 {
		return 0, nil
	}
	n, err := r.queries.ExpirePendingClaims(ctx, tx, dropIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending claims", err)
	}
	return n, nil
}
