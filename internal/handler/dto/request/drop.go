package request

import (
	"strings"

	"drop-arbiter/internal/usecase/commands"

	"github.com/google/uuid"
)

const (
	DropActionExtend = "extend"
	DropActionCancel = "cancel"
	DropActionStop   = "stop"
)

// Omitted price and timer fall back to server defaults; spots_available is
// required. Field validation is left to the domain so messages stay
// consistent across entry points.
type CreateDropRequest struct {
	OfferingID      uuid.UUID  `json:"offering_id"`
	ScheduleBlockID *uuid.UUID `json:"schedule_block_id,omitempty"`
	Title           string     `json:"title"`
	SpotsAvailable  *int       `json:"spots_available,omitempty"`
	PriceCents      *int       `json:"price_cents,omitempty"`
	TimerSeconds    *int       `json:"timer_seconds,omitempty"`
}

func (r CreateDropRequest) ToInput() commands.CreateDropInput {
	return commands.CreateDropInput{
		OfferingID:      r.OfferingID,
		ScheduleBlockID: r.ScheduleBlockID,
		Title:           strings.TrimSpace(r.Title),
		SpotsAvailable:  r.SpotsAvailable,
		PriceCents:      r.PriceCents,
		TimerSeconds:    r.TimerSeconds,
	}
}

type PatchDropRequest struct {
	Action            string `json:"action" binding:"required"`
	AdditionalSeconds *int   `json:"additional_seconds,omitempty"`
}

func (r PatchDropRequest) NormalizedAction() string {
	return strings.ToLower(strings.TrimSpace(r.Action))
}
