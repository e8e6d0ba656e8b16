package commands

import (
	"context"
	"log/slog"

	domoperator "drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/internal/pkg/jwt"
	"drop-arbiter/internal/usecase/queries"
	"drop-arbiter/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	Token    string
	Operator *queries.OperatorView
}

// OperatorCredentialStore loads the operator including the access code hash.
type OperatorCredentialStore interface {
	FindCredentials(ctx context.Context, id uuid.UUID) (*domoperator.Operator, error)
}

type AuthCommands interface {
	Login(ctx context.Context, operatorID uuid.UUID, accessCode string) (*LoginResult, error)
	// RegisterOperator creates or replaces an operator and its access code.
	RegisterOperator(ctx context.Context, id uuid.UUID, businessName, accessCode string) (*domoperator.Operator, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	store      OperatorCredentialStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, store OperatorCredentialStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		store:      store,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, operatorID uuid.UUID, accessCode string) (*LoginResult, error) {
	if operatorID == uuid.Nil || accessCode == "" {
		return nil, domoperator.ErrInvalidCredentials
	}

	op, err := a.store.FindCredentials(ctx, operatorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, domoperator.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := op.VerifyAccessCode(accessCode); err != nil {
		slog.WarnContext(ctx, "operator login rejected", "operator_id", operatorID.String())
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(op.ID(), op.BusinessName())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token: token,
		Operator: &queries.OperatorView{
			ID:           op.ID(),
			BusinessName: op.BusinessName(),
			CreatedAt:    op.CreatedAt(),
		},
	}, nil
}

func (a *authCommandsImpl) RegisterOperator(ctx context.Context, id uuid.UUID, businessName, accessCode string) (*domoperator.Operator, error) {
	op, err := domoperator.NewOperator(id, businessName, accessCode, a.clock.Now())
	if err != nil {
		return nil, err
	}
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Operators().Upsert(ctx, tx.DB(), op)
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}
