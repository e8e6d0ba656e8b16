package converter

import (
	"drop-arbiter/internal/domain/drop"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
)

func DropToCreateParams(d *drop.Drop) sqlc.CreateDropParams {
	return sqlc.CreateDropParams{
		ID:              d.ID(),
		OperatorID:      d.OperatorID(),
		OfferingID:      d.OfferingID(),
		ScheduleBlockID: pgconv.UUIDPtrToPgtype(d.ScheduleBlockID()),
		Title:           d.Title(),
		SpotsAvailable:  d.SpotsAvailable(),
		PriceCents:      d.PriceCents(),
		TimerSeconds:    d.TimerSeconds(),
		LaunchedAt:      pgconv.TimeToPgtype(d.LaunchedAt()),
		ExpiresAt:       pgconv.TimeToPgtype(d.ExpiresAt()),
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt()),
	}
}

func DropFromRow(row sqlc.Drops) *drop.Drop {
	return drop.Reconstruct(
		row.ID,
		row.OperatorID,
		row.OfferingID,
		pgconv.UUIDPtrFromPgtype(row.ScheduleBlockID),
		row.Title,
		row.SpotsAvailable,
		row.PriceCents,
		row.TimerSeconds,
		drop.Status(row.Status),
		pgconv.TimeFromPgtype(row.LaunchedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
