package repository

import (
	"context"

	"drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
)

type OperatorWriteQueries interface {
	UpsertOperator(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertOperatorParams) error
}

type OperatorRepository struct {
	queries OperatorWriteQueries
	db      sqlc.DBTX
}

func NewOperatorRepository(queries OperatorWriteQueries, db sqlc.DBTX) *OperatorRepository {
	return &OperatorRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OperatorRepository) Upsert(ctx context.Context, tx sqlc.DBTX, op *operator.Operator) error {
	err := r.queries.UpsertOperator(ctx, tx, sqlc.UpsertOperatorParams{
		ID:             op.ID(),
		BusinessName:   op.BusinessName(),
		AccessCodeHash: op.AccessCodeHash(),
		CreatedAt:      pgconv.TimeToPgtype(op.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert operator", err)
	}
	return nil
}
