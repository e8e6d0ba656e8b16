package queries

import (
	"context"
	"time"

	"drop-arbiter/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	DefaultHistoryDays = 7
	MaxHistoryDays     = 90
)

type StatsReadStore interface {
	DayStats(ctx context.Context, operatorID uuid.UUID, dayStart, dayEnd time.Time) (*TodayStats, error)
	DailyStats(ctx context.Context, operatorID uuid.UUID, firstDay, lastDay time.Time) ([]*DayStats, error)
}

type StatsQueries interface {
	Today(ctx context.Context, operatorID uuid.UUID) (*TodayStats, error)
	History(ctx context.Context, operatorID uuid.UUID, days int) ([]*DayStats, error)
}

type statsQueriesImpl struct {
	repo  StatsReadStore
	clock clock.Clock
}

func NewStatsQueries(repo StatsReadStore, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{repo: repo, clock: clk}
}

// Today covers [midnight, next midnight) in UTC.
func (q *statsQueriesImpl) Today(ctx context.Context, operatorID uuid.UUID) (*TodayStats, error) {
	start, end := DayBounds(q.clock.Now())
	return q.repo.DayStats(ctx, operatorID, start, end)
}

// History returns one row per UTC day, oldest first, ending with today.
func (q *statsQueriesImpl) History(ctx context.Context, operatorID uuid.UUID, days int) ([]*DayStats, error) {
	days = ClampHistoryDays(days)
	today, _ := DayBounds(q.clock.Now())
	return q.repo.DailyStats(ctx, operatorID, today.AddDate(0, 0, -(days-1)), today)
}

// ClampHistoryDays maps zero to the default and bounds everything else to [1, MaxHistoryDays].
func ClampHistoryDays(days int) int {
	switch {
	case days == 0:
		return DefaultHistoryDays
	case days < 1:
		return 1
	case days > MaxHistoryDays:
		return MaxHistoryDays
	}
	return days
}

func DayBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
