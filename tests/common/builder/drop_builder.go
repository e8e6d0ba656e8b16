//go:build unit || e2e

package builder

import (
	"time"

	domdrop "drop-arbiter/internal/domain/drop"
	reqdto "drop-arbiter/internal/handler/dto/request"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

type DropBuilder struct {
	OperatorID      uuid.UUID
	OfferingID      uuid.UUID
	ScheduleBlockID *uuid.UUID
	Title           string
	SpotsAvailable  int32
	PriceCents      int32
	TimerSeconds    int32
	Now             time.Time
}

func NewDropBuilder() *DropBuilder {
	return &DropBuilder{
		OperatorID:     uuid.New(),
		OfferingID:     uuid.New(),
		Title:          "6pm Spin Class",
		SpotsAvailable: 2,
		PriceCents:     2500,
		TimerSeconds:   90,
		Now:            time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),
	}
}

func (b *DropBuilder) With(mutate func(*DropBuilder)) *DropBuilder {
	mutate(b)
	return b
}

func (b *DropBuilder) WithOperatorID(id uuid.UUID) *DropBuilder {
	b.OperatorID = id
	return b
}

func (b *DropBuilder) WithOfferingID(id uuid.UUID) *DropBuilder {
	b.OfferingID = id
	return b
}

func (b *DropBuilder) WithTitle(title string) *DropBuilder {
	b.Title = title
	return b
}

func (b *DropBuilder) WithSpots(spots int32) *DropBuilder {
	b.SpotsAvailable = spots
	return b
}

func (b *DropBuilder) WithPrice(cents int32) *DropBuilder {
	b.PriceCents = cents
	return b
}

func (b *DropBuilder) WithTimer(seconds int32) *DropBuilder {
	b.TimerSeconds = seconds
	return b
}

func (b *DropBuilder) WithNow(now time.Time) *DropBuilder {
	b.Now = now
	return b
}

func (b *DropBuilder) params() domdrop.NewDropParams {
	return domdrop.NewDropParams{
		OperatorID:      b.OperatorID,
		OfferingID:      b.OfferingID,
		ScheduleBlockID: b.ScheduleBlockID,
		Title:           b.Title,
		SpotsAvailable:  b.SpotsAvailable,
		PriceCents:      b.PriceCents,
		TimerSeconds:    b.TimerSeconds,
	}
}

func (b *DropBuilder) BuildDomain() (*domdrop.Drop, error) {
	return domdrop.NewDrop(b.params(), b.Now)
}

func (b *DropBuilder) BuildWithStatus(status domdrop.Status) *domdrop.Drop {
	return domdrop.Reconstruct(uuid.New(), b.OperatorID, b.OfferingID, b.ScheduleBlockID, b.Title,
		b.SpotsAvailable, b.PriceCents, b.TimerSeconds, status,
		b.Now, b.Now.Add(time.Duration(b.TimerSeconds)*time.Second), b.Now)
}

func (b *DropBuilder) BuildCreateCommand() commands.CreateDropInput {
	spots := int(b.SpotsAvailable)
	price := int(b.PriceCents)
	timer := int(b.TimerSeconds)
	return commands.CreateDropInput{
		OfferingID:      b.OfferingID,
		ScheduleBlockID: b.ScheduleBlockID,
		Title:           b.Title,
		SpotsAvailable:  &spots,
		PriceCents:      &price,
		TimerSeconds:    &timer,
	}
}

func (b *DropBuilder) BuildCreateRequestDTO() reqdto.CreateDropRequest {
	spots := int(b.SpotsAvailable)
	price := int(b.PriceCents)
	timer := int(b.TimerSeconds)
	return reqdto.CreateDropRequest{
		OfferingID:      b.OfferingID,
		ScheduleBlockID: b.ScheduleBlockID,
		Title:           b.Title,
		SpotsAvailable:  &spots,
		PriceCents:      &price,
		TimerSeconds:    &timer,
	}
}

func (b *DropBuilder) BuildView() *queries.DropView {
	return &queries.DropView{
		ID:              uuid.New(),
		OperatorID:      b.OperatorID,
		OfferingID:      b.OfferingID,
		ScheduleBlockID: b.ScheduleBlockID,
		Title:           b.Title,
		SpotsAvailable:  b.SpotsAvailable,
		PriceCents:      b.PriceCents,
		TimerSeconds:    b.TimerSeconds,
		Status:          string(domdrop.StatusLive),
		LaunchedAt:      b.Now,
		ExpiresAt:       b.Now.Add(time.Duration(b.TimerSeconds) * time.Second),
		CreatedAt:       b.Now,
	}
}
