package usecase

import (
	"context"

	"drop-arbiter/internal/pkg/jwt"
	"drop-arbiter/internal/usecase/queries"

	"github.com/google/uuid"
)

// OperatorIdentity is what a valid token proves about its bearer.
type OperatorIdentity struct {
	OperatorID   uuid.UUID
	BusinessName string
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*OperatorIdentity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	operators  queries.OperatorQueries
}

func NewTokenValidator(jwtService *jwt.Service, operators queries.OperatorQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		operators:  operators,
	}
}

// ValidateToken also rejects tokens whose operator no longer exists.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*OperatorIdentity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	op, err := t.operators.GetCurrentOperator(ctx, claims.OperatorID)
	if err != nil {
		return nil, err
	}

	return &OperatorIdentity{
		OperatorID:   op.ID,
		BusinessName: op.BusinessName,
	}, nil
}
