package claim

import (
	"strings"
	"time"

	"drop-arbiter/internal/pkg/phone"

	"github.com/google/uuid"
)

// Claim is one claimant's attempt at a spot. It leaves pending exactly once.
type Claim struct {
	id            uuid.UUID
	dropID        uuid.UUID
	claimantPhone string
	claimantName  string
	status        Status
	claimedAt     time.Time
	confirmedAt   *time.Time
}

func NewClaim(dropID uuid.UUID, rawPhone, rawName string, now time.Time) (*Claim, error) {
	trimmedPhone := strings.TrimSpace(rawPhone)
	if trimmedPhone == "" {
		return nil, ErrPhoneRequired
	}
	name := strings.TrimSpace(rawName)
	if name == "" {
		return nil, ErrNameRequired
	}
	normalized := phone.Normalize(trimmedPhone)
	if normalized == "" {
		return nil, ErrInvalidPhone
	}

	return &Claim{
		id:            uuid.New(),
		dropID:        dropID,
		claimantPhone: normalized,
		claimantName:  name,
		status:        StatusPending,
		claimedAt:     now,
	}, nil
}

func Reconstruct(id, dropID uuid.UUID, claimantPhone, claimantName string, status Status, claimedAt time.Time, confirmedAt *time.Time) *Claim {
	return &Claim{
		id:            id,
		dropID:        dropID,
		claimantPhone: claimantPhone,
		claimantName:  claimantName,
		status:        status,
		claimedAt:     claimedAt,
		confirmedAt:   confirmedAt,
	}
}

func (c *Claim) IsPending() bool { return c.status == StatusPending }

func (c *Claim) Confirm(at time.Time) error {
	if !c.IsPending() {
		return ErrNotPending
	}
	c.status = StatusConfirmed
	c.confirmedAt = &at
	return nil
}

func (c *Claim) Reject() error {
	if !c.IsPending() {
		return ErrPendingNotFound
	}
	c.status = StatusRejected
	return nil
}

// Expire is a no-op for claims that already left pending.
func (c *Claim) Expire() bool {
	if !c.IsPending() {
		return false
	}
	c.status = StatusExpired
	return true
}

func (c *Claim) ID() uuid.UUID            { return c.id }
func (c *Claim) DropID() uuid.UUID        { return c.dropID }
func (c *Claim) ClaimantPhone() string    { return c.claimantPhone }
func (c *Claim) ClaimantName() string     { return c.claimantName }
func (c *Claim) Status() Status           { return c.status }
func (c *Claim) ClaimedAt() time.Time     { return c.claimedAt }
func (c *Claim) ConfirmedAt() *time.Time  { return c.confirmedAt }

func (c *Claim) Clone() *Claim {
	cp := *c
	if c.confirmedAt != nil {
		t := *c.confirmedAt
		cp.confirmedAt = &t
	}
	return &cp
}
