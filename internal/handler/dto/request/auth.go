package request

import "github.com/google/uuid"

type LoginRequest struct {
	OperatorID uuid.UUID `json:"operator_id" binding:"required"`
	AccessCode string    `json:"access_code" binding:"required"`
}
