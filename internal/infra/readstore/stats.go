package readstore

import (
	"context"
	"time"

	"drop-arbiter/internal/infra"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

type StatsReadQueries interface {
	GetOperatorDayStats(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOperatorDayStatsParams) (sqlc.GetOperatorDayStatsRow, error)
	ListOperatorDailyStats(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOperatorDailyStatsParams) ([]sqlc.ListOperatorDailyStatsRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) DayStats(ctx context.Context, operatorID uuid.UUID, dayStart, dayEnd time.Time) (*queries.TodayStats, error) {
	row, err := r.queries.GetOperatorDayStats(ctx, r.db, sqlc.GetOperatorDayStatsParams{
		OperatorID: operatorID,
		DayStart:   pgconv.TimeToPgtype(dayStart),
		DayEnd:     pgconv.TimeToPgtype(dayEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get day stats", err)
	}
	return &queries.TodayStats{
		RecoveredRevenueCents: row.RecoveredRevenueCents,
		DropsLaunched:         row.DropsLaunched,
		DropsFilled:           row.DropsFilled,
		ClaimsCount:           row.ClaimsCount,
	}, nil
}

// DailyStats lists every day in [firstDay, lastDay], including days with no activity.
func (r *StatsReadStore) DailyStats(ctx context.Context, operatorID uuid.UUID, firstDay, lastDay time.Time) ([]*queries.DayStats, error) {
	rows, err := r.queries.ListOperatorDailyStats(ctx, r.db, sqlc.ListOperatorDailyStatsParams{
		FirstDay:   pgconv.TimeToPgtype(firstDay),
		LastDay:    pgconv.TimeToPgtype(lastDay),
		OperatorID: operatorID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list daily stats", err)
	}
	out := make([]*queries.DayStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.DayStats{
			Day:                   pgconv.TimeFromPgtype(row.Day).UTC(),
			DropsLaunched:         row.DropsLaunched,
			DropsFilled:           row.DropsFilled,
			RecoveredRevenueCents: row.RecoveredRevenueCents,
		})
	}
	return out, nil
}
