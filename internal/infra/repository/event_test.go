//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"drop-arbiter/internal/domain/event"
	domoperator "drop-arbiter/internal/domain/operator"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/infra/repository"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	repositorymock "drop-arbiter/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventRepository_Append(t *testing.T) {
	ctx := context.Background()
	operatorID := uuid.New()
	dropID := uuid.New()
	e := event.New(operatorID, event.TypeDropLaunched, "Iron Forge Fitness", event.Payload{"drop_id": dropID.String()}, launchedAt)

	t.Run("success: payload encoded as json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertOperatorEvent(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOperatorEventParams) error {
				assert.Equal(t, e.ID, arg.ID)
				assert.Equal(t, operatorID, arg.OperatorID)
				assert.Equal(t, "drop_launched", arg.Type)
				assert.Equal(t, "Iron Forge Fitness", arg.Actor)
				assert.JSONEq(t, `{"drop_id":"`+dropID.String()+`"}`, string(arg.Payload))
				assert.Equal(t, launchedAt, arg.CreatedAt.Time)
				return nil
			})

		err := repository.NewEventRepository(mockQueries, mockDB).Append(ctx, mockDB, e)

		assert.NoError(t, err)
	})

	t.Run("error: unencodable payload never reaches the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		bad := event.New(operatorID, event.TypeDropLaunched, "", event.Payload{"ch": make(chan int)}, launchedAt)

		err := repository.NewEventRepository(mockQueries, mockDB).Append(ctx, mockDB, bad)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertOperatorEvent(ctx, mockDB, gomock.Any()).Return(errors.New("boom"))

		err := repository.NewEventRepository(mockQueries, mockDB).Append(ctx, mockDB, e)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOperatorRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	op, err := domoperator.NewOperator(uuid.New(), "Iron Forge Fitness", "forge-2024", launchedAt)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: operator stored"},
		{name: "error: duplicate business", err: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: database error occurs", err: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOperatorWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpsertOperator(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertOperatorParams) error {
					assert.Equal(t, op.ID(), arg.ID)
					assert.Equal(t, op.AccessCodeHash(), arg.AccessCodeHash)
					assert.NotEqual(t, "forge-2024", arg.AccessCodeHash)
					return tc.err
				})

			err := repository.NewOperatorRepository(mockQueries, mockDB).Upsert(ctx, mockDB, op)

			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
