package queries

import (
	"time"

	"github.com/google/uuid"
)

// DropView represents read-optimized drop data
type DropView struct {
	ID              uuid.UUID  `json:"id"`
	OperatorID      uuid.UUID  `json:"operator_id"`
	OfferingID      uuid.UUID  `json:"offering_id"`
	ScheduleBlockID *uuid.UUID `json:"schedule_block_id,omitempty"`
	Title           string     `json:"title"`
	SpotsAvailable  int32      `json:"spots_available"`
	PriceCents      int32      `json:"price_cents"`
	TimerSeconds    int32      `json:"timer_seconds"`
	Status          string     `json:"status"`
	LaunchedAt      time.Time  `json:"launched_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DropListItem struct {
	DropView
	ClaimsCount int32 `json:"claims_count"`
}

type DropHistoryItem struct {
	DropView
	ConfirmedClaims int32 `json:"confirmed_claims"`
}

type DropDetail struct {
	DropView
	Claims []*ClaimView `json:"claims"`
}

// ClaimView represents read-optimized claim data
type ClaimView struct {
	ID            uuid.UUID  `json:"id"`
	DropID        uuid.UUID  `json:"drop_id"`
	ClaimantPhone string     `json:"claimant_phone"`
	ClaimantName  string     `json:"claimant_name"`
	Status        string     `json:"status"`
	ClaimedAt     time.Time  `json:"claimed_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
}

// TodayStats aggregates one operator's activity within a single day.
type TodayStats struct {
	RecoveredRevenueCents int64 `json:"recovered_revenue_cents"`
	DropsLaunched         int32 `json:"drops_launched"`
	DropsFilled           int32 `json:"drops_filled"`
	ClaimsCount           int32 `json:"claims_count"`
}

// DayStats is one UTC day of an operator's history. Days without activity carry zeros.
type DayStats struct {
	Day                   time.Time `json:"day"`
	DropsLaunched         int32     `json:"drops_launched"`
	DropsFilled           int32     `json:"drops_filled"`
	RecoveredRevenueCents int64     `json:"recovered_revenue_cents"`
}

type OperatorView struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	CreatedAt    time.Time `json:"created_at"`
}
