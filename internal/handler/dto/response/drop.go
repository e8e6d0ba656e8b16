package response

import (
	"time"

	"drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DropResponse struct {
	ID              uuid.UUID  `json:"id"`
	OperatorID      uuid.UUID  `json:"operator_id"`
	OfferingID      uuid.UUID  `json:"offering_id"`
	ScheduleBlockID *uuid.UUID `json:"schedule_block_id"`
	Title           string     `json:"title"`
	SpotsAvailable  int32      `json:"spots_available"`
	PriceCents      int32      `json:"price_cents"`
	TimerSeconds    int32      `json:"timer_seconds"`
	Status          string     `json:"status"`
	LaunchedAt      time.Time  `json:"launched_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DropListItemResponse struct {
	DropResponse
	ClaimsCount int32 `json:"claims_count"`
}

type DropHistoryItemResponse struct {
	DropResponse
	ConfirmedClaims int32 `json:"confirmed_claims"`
}

type DropDetailResponse struct {
	DropResponse
	Claims []*ClaimResponse `json:"claims"`
}

// FromDrop copies through the entity's getters.
func FromDrop(d *drop.Drop) (*DropResponse, error) {
	var res DropResponse
	if err := copier.CopyWithOption(&res, d, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func fromDropView(v queries.DropView) (DropResponse, error) {
	var res DropResponse
	err := copier.CopyWithOption(&res, &v, copyOption)
	return res, err
}

func FromDropList(items []*queries.DropListItem) ([]*DropListItemResponse, error) {
	res := make([]*DropListItemResponse, len(items))
	for i, it := range items {
		base, err := fromDropView(it.DropView)
		if err != nil {
			return nil, err
		}
		res[i] = &DropListItemResponse{DropResponse: base, ClaimsCount: it.ClaimsCount}
	}
	return res, nil
}

func FromDropHistory(items []*queries.DropHistoryItem) ([]*DropHistoryItemResponse, error) {
	res := make([]*DropHistoryItemResponse, len(items))
	for i, it := range items {
		base, err := fromDropView(it.DropView)
		if err != nil {
			return nil, err
		}
		res[i] = &DropHistoryItemResponse{DropResponse: base, ConfirmedClaims: it.ConfirmedClaims}
	}
	return res, nil
}

func FromDropDetail(d *queries.DropDetail) (*DropDetailResponse, error) {
	base, err := fromDropView(d.DropView)
	if err != nil {
		return nil, err
	}
	claims := make([]*ClaimResponse, 0, len(d.Claims))
	if len(d.Claims) == 0 {
		return &DropDetailResponse{DropResponse: base, Claims: claims}, nil
	}
	if err := copier.CopyWithOption(&claims, &d.Claims, copyOption); err != nil {
		return nil, err
	}
	return &DropDetailResponse{DropResponse: base, Claims: claims}, nil
}

// Entities expose state through getters over unexported fields; a
// case-insensitive match would hit those fields instead of the getters.
var copyOption = copier.Option{CaseSensitive: true}
