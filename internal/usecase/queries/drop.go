package queries

import (
	"context"

	domdrop "drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStatusFilter = errs.Validation("Invalid status filter")

type DropReadStore interface {
	ListWithClaimCount(ctx context.Context, operatorID uuid.UUID, status *string) ([]*DropListItem, error)
	ListHistory(ctx context.Context, operatorID uuid.UUID) ([]*DropHistoryItem, error)
	FindByOperator(ctx context.Context, id, operatorID uuid.UUID) (*DropView, error)
	ListClaims(ctx context.Context, dropID uuid.UUID) ([]*ClaimView, error)
}

type DropQueries interface {
	// List returns the operator's drops newest first; an empty status means all.
	List(ctx context.Context, operatorID uuid.UUID, status string) ([]*DropListItem, error)
	History(ctx context.Context, operatorID uuid.UUID) ([]*DropHistoryItem, error)
	Get(ctx context.Context, operatorID, dropID uuid.UUID) (*DropDetail, error)
}

type dropQueriesImpl struct {
	repo DropReadStore
}

func NewDropQueries(repo DropReadStore) DropQueries {
	return &dropQueriesImpl{repo: repo}
}

func (q *dropQueriesImpl) List(ctx context.Context, operatorID uuid.UUID, status string) ([]*DropListItem, error) {
	var filter *string
	if status != "" {
		if _, err := domdrop.ParseStatus(status); err != nil {
			return nil, ErrInvalidStatusFilter
		}
		filter = &status
	}
	return q.repo.ListWithClaimCount(ctx, operatorID, filter)
}

func (q *dropQueriesImpl) History(ctx context.Context, operatorID uuid.UUID) ([]*DropHistoryItem, error) {
	return q.repo.ListHistory(ctx, operatorID)
}

func (q *dropQueriesImpl) Get(ctx context.Context, operatorID, dropID uuid.UUID) (*DropDetail, error) {
	view, err := q.repo.FindByOperator(ctx, dropID, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, domdrop.ErrNotFound
		}
		return nil, err
	}
	claims, err := q.repo.ListClaims(ctx, dropID)
	if err != nil {
		return nil, err
	}
	return &DropDetail{DropView: *view, Claims: claims}, nil
}
