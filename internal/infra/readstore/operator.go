package readstore

import (
	"context"

	"drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

type OperatorReadQueries interface {
	GetOperatorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Operators, error)
}

type OperatorReadStore struct {
	queries OperatorReadQueries
	db      sqlc.DBTX
}

func NewOperatorReadStore(queries OperatorReadQueries, db sqlc.DBTX) *OperatorReadStore {
	return &OperatorReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OperatorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OperatorView, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.OperatorView{
		ID:           row.ID,
		BusinessName: row.BusinessName,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// FindCredentials loads the aggregate including the access code hash.
func (r *OperatorReadStore) FindCredentials(ctx context.Context, id uuid.UUID) (*operator.Operator, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return operator.Reconstruct(row.ID, row.BusinessName, row.AccessCodeHash, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func (r *OperatorReadStore) find(ctx context.Context, id uuid.UUID) (sqlc.Operators, error) {
	row, err := r.queries.GetOperatorByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Operators{}, infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return sqlc.Operators{}, infra.WrapRepoErr("failed to get operator", err)
	}
	return row, nil
}
