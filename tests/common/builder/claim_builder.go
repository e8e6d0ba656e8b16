//go:build unit || e2e

package builder

import (
	"time"

	domclaim "drop-arbiter/internal/domain/claim"
	reqdto "drop-arbiter/internal/handler/dto/request"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	DropID        uuid.UUID
	ClaimantPhone string
	ClaimantName  string
	Now           time.Time
}

func NewClaimBuilder() *ClaimBuilder {
	return &ClaimBuilder{
		DropID:        uuid.New(),
		ClaimantPhone: "(415) 555-0134",
		ClaimantName:  "Dana Whitfield",
		Now:           time.Date(2025, 3, 14, 18, 0, 30, 0, time.UTC),
	}
}

func (b *ClaimBuilder) WithDropID(id uuid.UUID) *ClaimBuilder {
	b.DropID = id
	return b
}

func (b *ClaimBuilder) WithPhone(phone string) *ClaimBuilder {
	b.ClaimantPhone = phone
	return b
}

func (b *ClaimBuilder) WithName(name string) *ClaimBuilder {
	b.ClaimantName = name
	return b
}

func (b *ClaimBuilder) BuildDomain() (*domclaim.Claim, error) {
	return domclaim.NewClaim(b.DropID, b.ClaimantPhone, b.ClaimantName, b.Now)
}

func (b *ClaimBuilder) BuildWithStatus(status domclaim.Status) *domclaim.Claim {
	var confirmedAt *time.Time
	if status == domclaim.StatusConfirmed {
		t := b.Now
		confirmedAt = &t
	}
	return domclaim.Reconstruct(uuid.New(), b.DropID, b.ClaimantPhone, b.ClaimantName, status, b.Now, confirmedAt)
}

func (b *ClaimBuilder) BuildRequestDTO() reqdto.SubmitClaimRequest {
	return reqdto.SubmitClaimRequest{
		ClaimantPhone: b.ClaimantPhone,
		ClaimantName:  b.ClaimantName,
	}
}

func (b *ClaimBuilder) BuildView() *queries.ClaimView {
	return &queries.ClaimView{
		ID:            uuid.New(),
		DropID:        b.DropID,
		ClaimantPhone: b.ClaimantPhone,
		ClaimantName:  b.ClaimantName,
		Status:        string(domclaim.StatusPending),
		ClaimedAt:     b.Now,
	}
}
