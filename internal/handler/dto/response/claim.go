package response

import (
	"time"

	"drop-arbiter/internal/domain/claim"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClaimResponse struct {
	ID            uuid.UUID  `json:"id"`
	DropID        uuid.UUID  `json:"drop_id"`
	ClaimantPhone string     `json:"claimant_phone"`
	ClaimantName  string     `json:"claimant_name"`
	Status        string     `json:"status"`
	ClaimedAt     time.Time  `json:"claimed_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at"`
}

func FromClaim(c *claim.Claim) (*ClaimResponse, error) {
	var res ClaimResponse
	if err := copier.CopyWithOption(&res, c, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}
