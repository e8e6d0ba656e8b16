//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"drop-arbiter/internal/pkg/jwt"
	"drop-arbiter/internal/usecase"
	"drop-arbiter/internal/usecase/queries"
	queriesmock "drop-arbiter/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	svc := jwt.NewService("test-secret", time.Hour)
	operatorID := uuid.New()
	token, err := svc.GenerateToken(operatorID, "Stale Name")
	require.NoError(t, err)

	t.Run("success: identity reflects the stored operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockOperatorQueries(ctrl)
		q.EXPECT().GetCurrentOperator(gomock.Any(), operatorID).
			Return(&queries.OperatorView{ID: operatorID, BusinessName: "Iron Forge Fitness"}, nil)

		identity, err := usecase.NewTokenValidator(svc, q).ValidateToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, operatorID, identity.OperatorID)
		assert.Equal(t, "Iron Forge Fitness", identity.BusinessName)
	})

	t.Run("error: deleted operator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockOperatorQueries(ctrl)
		q.EXPECT().GetCurrentOperator(gomock.Any(), operatorID).Return(nil, queries.ErrOperatorNotFound)

		_, err := usecase.NewTokenValidator(svc, q).ValidateToken(ctx, token)

		assert.ErrorIs(t, err, queries.ErrOperatorNotFound)
	})

	t.Run("error: foreign signature never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockOperatorQueries(ctrl)
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateToken(operatorID, "x")
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(svc, q).ValidateToken(ctx, forged)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
