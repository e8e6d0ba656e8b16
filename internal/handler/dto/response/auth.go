package response

import (
	"time"

	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

type OperatorResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token    string            `json:"token"`
	Operator *OperatorResponse `json:"operator"`
}

func FromOperatorView(v *queries.OperatorView) *OperatorResponse {
	if v == nil {
		return nil
	}
	return &OperatorResponse{
		ID:           v.ID,
		BusinessName: v.BusinessName,
		CreatedAt:    v.CreatedAt,
	}
}
