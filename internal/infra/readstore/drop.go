package readstore

import (
	"context"

	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/internal/pkg/ptr"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DropReadQueries interface {
	ListDropsWithClaimCount(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDropsWithClaimCountParams) ([]sqlc.ListDropsWithClaimCountRow, error)
	ListDropHistory(ctx context.Context, db sqlc.DBTX, operatorID uuid.UUID) ([]sqlc.ListDropHistoryRow, error)
	GetDropByOperator(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDropByOperatorParams) (sqlc.Drops, error)
	ListClaimsByDrop(ctx context.Context, db sqlc.DBTX, dropID uuid.UUID) ([]sqlc.Claims, error)
}

type DropReadStore struct {
	queries DropReadQueries
	db      sqlc.DBTX
}

func NewDropReadStore(queries DropReadQueries, db sqlc.DBTX) *DropReadStore {
	return &DropReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DropReadStore) ListWithClaimCount(ctx context.Context, operatorID uuid.UUID, status *string) ([]*queries.DropListItem, error) {
	params := sqlc.ListDropsWithClaimCountParams{OperatorID: operatorID}
	if status != nil {
		params.Status = pgtype.Text{String: *status, Valid: true}
	}
	rows, err := r.queries.ListDropsWithClaimCount(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drops", err)
	}
	items := make([]*queries.DropListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.DropListItem{
			DropView: queries.DropView{
				ID:              row.ID,
				OperatorID:      row.OperatorID,
				OfferingID:      row.OfferingID,
				ScheduleBlockID: pgconv.UUIDPtrFromPgtype(row.ScheduleBlockID),
				Title:           row.Title,
				SpotsAvailable:  row.SpotsAvailable,
				PriceCents:      row.PriceCents,
				TimerSeconds:    row.TimerSeconds,
				Status:          row.Status,
				LaunchedAt:      pgconv.TimeFromPgtype(row.LaunchedAt),
				ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
				CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			},
			ClaimsCount: row.ClaimsCount,
		})
	}
	return items, nil
}

func (r *DropReadStore) ListHistory(ctx context.Context, operatorID uuid.UUID) ([]*queries.DropHistoryItem, error) {
	rows, err := r.queries.ListDropHistory(ctx, r.db, operatorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drop history", err)
	}
	items := make([]*queries.DropHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.DropHistoryItem{
			DropView: queries.DropView{
				ID:              row.ID,
				OperatorID:      row.OperatorID,
				OfferingID:      row.OfferingID,
				ScheduleBlockID: pgconv.UUIDPtrFromPgtype(row.ScheduleBlockID),
				Title:           row.Title,
				SpotsAvailable:  row.SpotsAvailable,
				PriceCents:      row.PriceCents,
				TimerSeconds:    row.TimerSeconds,
				Status:          row.Status,
				LaunchedAt:      pgconv.TimeFromPgtype(row.LaunchedAt),
				ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
				CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			},
			ConfirmedClaims: row.ConfirmedClaims,
		})
	}
	return items, nil
}

func (r *DropReadStore) FindByOperator(ctx context.Context, id, operatorID uuid.UUID) (*queries.DropView, error) {
	row, err := r.queries.GetDropByOperator(ctx, r.db, sqlc.GetDropByOperatorParams{ID: id, OperatorID: operatorID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("drop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get drop", err)
	}
	return toDropView(row), nil
}

func (r *DropReadStore) ListClaims(ctx context.Context, dropID uuid.UUID) ([]*queries.ClaimView, error) {
	rows, err := r.queries.ListClaimsByDrop(ctx, r.db, dropID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims", err)
	}
	views := make([]*queries.ClaimView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ClaimView{
			ID:            row.ID,
			DropID:        row.DropID,
			ClaimantPhone: row.ClaimantPhone,
			ClaimantName:  row.ClaimantName,
			Status:        row.Status,
			ClaimedAt:     pgconv.TimeFromPgtype(row.ClaimedAt),
			ConfirmedAt:   ptr.TimeFromPgtype(row.ConfirmedAt),
		})
	}
	return views, nil
}

func toDropView(row sqlc.Drops) *queries.DropView {
	return &queries.DropView{
		ID:              row.ID,
		OperatorID:      row.OperatorID,
		OfferingID:      row.OfferingID,
		ScheduleBlockID: pgconv.UUIDPtrFromPgtype(row.ScheduleBlockID),
		Title:           row.Title,
		SpotsAvailable:  row.SpotsAvailable,
		PriceCents:      row.PriceCents,
		TimerSeconds:    row.TimerSeconds,
		Status:          row.Status,
		LaunchedAt:      pgconv.TimeFromPgtype(row.LaunchedAt),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
