package queries

import (
	"context"

	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOperatorNotFound = errs.NotFound("Operator not found")

type OperatorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
}

type OperatorQueries interface {
	GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error)
}

type operatorQueriesImpl struct {
	readStore OperatorReadStore
}

func NewOperatorQueries(readStore OperatorReadStore) OperatorQueries {
	return &operatorQueriesImpl{
		readStore: readStore,
	}
}

func (q *operatorQueriesImpl) GetCurrentOperator(ctx context.Context, operatorID uuid.UUID) (*OperatorView, error) {
	op, err := q.readStore.FindByID(ctx, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOperatorNotFound
		}
		return nil, err
	}
	return op, nil
}
