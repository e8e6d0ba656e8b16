package response

import (
	"time"

	"drop-arbiter/internal/usecase/queries"
)

type TodayStatsResponse struct {
	RecoveredRevenueCents int64 `json:"recovered_revenue_cents"`
	DropsLaunched         int32 `json:"drops_launched"`
	DropsFilled           int32 `json:"drops_filled"`
	ClaimsCount           int32 `json:"claims_count"`
}

func FromTodayStats(s *queries.TodayStats) *TodayStatsResponse {
	return &TodayStatsResponse{
		RecoveredRevenueCents: s.RecoveredRevenueCents,
		DropsLaunched:         s.DropsLaunched,
		DropsFilled:           s.DropsFilled,
		ClaimsCount:           s.ClaimsCount,
	}
}

type DayStatsResponse struct {
	Day                   string `json:"day"`
	DropsLaunched         int32  `json:"drops_launched"`
	DropsFilled           int32  `json:"drops_filled"`
	RecoveredRevenueCents int64  `json:"recovered_revenue_cents"`
}

func FromDailyStats(days []*queries.DayStats) []DayStatsResponse {
	out := make([]DayStatsResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DayStatsResponse{
			Day:                   d.Day.UTC().Format(time.DateOnly),
			DropsLaunched:         d.DropsLaunched,
			DropsFilled:           d.DropsFilled,
			RecoveredRevenueCents: d.RecoveredRevenueCents,
		})
	}
	return out
}
