package request

import "drop-arbiter/internal/usecase/commands"

type SubmitClaimRequest struct {
	ClaimantPhone string `json:"claimant_phone"`
	ClaimantName  string `json:"claimant_name"`
}

func (r SubmitClaimRequest) ToInput() commands.SubmitClaimInput {
	return commands.SubmitClaimInput{
		ClaimantPhone: r.ClaimantPhone,
		ClaimantName:  r.ClaimantName,
	}
}
