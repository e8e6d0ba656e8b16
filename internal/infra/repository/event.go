package repository

import (
	"context"
	"encoding/json"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
)

type EventWriteQueries interface {
	InsertOperatorEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOperatorEventParams) error
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, tx sqlc.DBTX, e event.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event payload", err)
	}
	err = r.queries.InsertOperatorEvent(ctx, tx, sqlc.InsertOperatorEventParams{
		ID:         e.ID,
		OperatorID: e.OperatorID,
		Type:       string(e.Type),
		Actor:      e.Actor,
		Payload:    payload,
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append event", err)
	}
	return nil
}
