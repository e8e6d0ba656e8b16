package drop

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type NewDropParams struct {
	OperatorID      uuid.UUID
	OfferingID      uuid.UUID
	ScheduleBlockID *uuid.UUID
	Title           string
	SpotsAvailable  int32
	PriceCents      int32
	TimerSeconds    int32
}

// Drop is a perishable offer with a fixed number of spots. Status starts live
// and never leaves a terminal value.
type Drop struct {
	id              uuid.UUID
	operatorID      uuid.UUID
	offeringID      uuid.UUID
	scheduleBlockID *uuid.UUID
	title           string
	spotsAvailable  int32
	priceCents      int32
	timerSeconds    int32
	status          Status
	launchedAt      time.Time
	expiresAt       time.Time
	createdAt       time.Time
}

func NewDrop(p NewDropParams, now time.Time) (*Drop, error) {
	if p.OperatorID == uuid.Nil {
		return nil, ErrOperatorRequired
	}
	if p.OfferingID == uuid.Nil {
		return nil, ErrOfferingRequired
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if p.SpotsAvailable <= 0 {
		return nil, ErrInvalidSpots
	}
	if p.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	if p.TimerSeconds <= 0 {
		return nil, ErrInvalidTimer
	}

	return &Drop{
		id:              uuid.New(),
		operatorID:      p.OperatorID,
		offeringID:      p.OfferingID,
		scheduleBlockID: p.ScheduleBlockID,
		title:           title,
		spotsAvailable:  p.SpotsAvailable,
		priceCents:      p.PriceCents,
		timerSeconds:    p.TimerSeconds,
		status:          StatusLive,
		launchedAt:      now,
		expiresAt:       now.Add(time.Duration(p.TimerSeconds) * time.Second),
		createdAt:       now,
	}, nil
}

func Reconstruct(
	id, operatorID, offeringID uuid.UUID,
	scheduleBlockID *uuid.UUID,
	title string,
	spotsAvailable, priceCents, timerSeconds int32,
	status Status,
	launchedAt, expiresAt, createdAt time.Time,
) *Drop {
	return &Drop{
		id:              id,
		operatorID:      operatorID,
		offeringID:      offeringID,
		scheduleBlockID: scheduleBlockID,
		title:           title,
		spotsAvailable:  spotsAvailable,
		priceCents:      priceCents,
		timerSeconds:    timerSeconds,
		status:          status,
		launchedAt:      launchedAt,
		expiresAt:       expiresAt,
		createdAt:       createdAt,
	}
}

func (d *Drop) IsLive() bool { return d.status == StatusLive }

// IsExpiredAt is the single expiry predicate shared by lazy expiry and the sweeper.
func (d *Drop) IsExpiredAt(now time.Time) bool {
	return !now.Before(d.expiresAt)
}

// IsDueAt reports whether the drop is live but past its deadline.
func (d *Drop) IsDueAt(now time.Time) bool {
	return d.IsLive() && d.IsExpiredAt(now)
}

func (d *Drop) IsFullWith(confirmed int32) bool {
	return confirmed >= d.spotsAvailable
}

func (d *Drop) CheckClaimable(now time.Time) error {
	if !d.IsLive() {
		return ErrNotLive
	}
	if d.IsExpiredAt(now) {
		return ErrExpired
	}
	return nil
}

func (d *Drop) CheckConfirmable(now time.Time) error {
	if !d.IsLive() {
		return ErrCannotConfirm(d.status)
	}
	if d.IsExpiredAt(now) {
		return ErrExpired
	}
	return nil
}

func (d *Drop) CheckCancellable() error {
	if d.status == StatusFilled {
		return ErrCannotCancelFilled
	}
	if !d.IsLive() {
		return ErrNotCancellable
	}
	return nil
}

func (d *Drop) Expire() error {
	if !d.IsLive() {
		return ErrNotLive
	}
	d.status = StatusExpired
	return nil
}

func (d *Drop) Fill() error {
	if !d.IsLive() {
		return ErrNotLive
	}
	d.status = StatusFilled
	return nil
}

func (d *Drop) Cancel() error {
	if err := d.CheckCancellable(); err != nil {
		return err
	}
	d.status = StatusCancelled
	return nil
}

func (d *Drop) Extend(seconds int32) error {
	if seconds <= 0 {
		return ErrInvalidExtension
	}
	if !d.IsLive() {
		return ErrNotExtendable
	}
	if int64(d.timerSeconds)+int64(seconds) > math.MaxInt32 {
		return ErrTimerOverflow
	}
	d.timerSeconds += seconds
	d.expiresAt = d.expiresAt.Add(time.Duration(seconds) * time.Second)
	return nil
}

func (d *Drop) ID() uuid.UUID               { return d.id }
func (d *Drop) OperatorID() uuid.UUID       { return d.operatorID }
func (d *Drop) OfferingID() uuid.UUID       { return d.offeringID }
func (d *Drop) ScheduleBlockID() *uuid.UUID { return d.scheduleBlockID }
func (d *Drop) Title() string               { return d.title }
func (d *Drop) SpotsAvailable() int32       { return d.spotsAvailable }
func (d *Drop) PriceCents() int32           { return d.priceCents }
func (d *Drop) TimerSeconds() int32         { return d.timerSeconds }
func (d *Drop) Status() Status              { return d.status }
func (d *Drop) LaunchedAt() time.Time       { return d.launchedAt }
func (d *Drop) ExpiresAt() time.Time        { return d.expiresAt }
func (d *Drop) CreatedAt() time.Time        { return d.createdAt }

// Clone returns an independent copy, used by in-memory stores.
func (d *Drop) Clone() *Drop {
	c := *d
	if d.scheduleBlockID != nil {
		id := *d.scheduleBlockID
		c.scheduleBlockID = &id
	}
	return &c
}
