//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domdrop "drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/infra"
	"drop-arbiter/internal/infra/repository"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/pkg/pgconv"
	"drop-arbiter/tests/common/builder"
	repositorymock "drop-arbiter/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var launchedAt = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

func dropRow(id, operatorID uuid.UUID, status string) sqlc.Drops {
	return sqlc.Drops{
		ID:             id,
		OperatorID:     operatorID,
		OfferingID:     uuid.New(),
		Title:          "Open Mat",
		SpotsAvailable: 2,
		PriceCents:     1500,
		TimerSeconds:   90,
		Status:         status,
		LaunchedAt:     pgconv.TimeToPgtype(launchedAt),
		ExpiresAt:      pgconv.TimeToPgtype(launchedAt.Add(90 * time.Second)),
		CreatedAt:      pgconv.TimeToPgtype(launchedAt),
	}
}

// =============================================================================
// Create Drop Tests
// =============================================================================

func TestDropRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDropWriteQueries, *domdrop.Drop, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: drop created with converted params",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, d *domdrop.Drop, tx sqlc.DBTX) {
				mock.EXPECT().CreateDrop(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateDropParams) (sqlc.Drops, error) {
						assert.Equal(t, d.ID(), arg.ID)
						assert.Equal(t, d.Title(), arg.Title)
						assert.Equal(t, d.SpotsAvailable(), arg.SpotsAvailable)
						assert.Equal(t, d.ExpiresAt(), arg.ExpiresAt.Time)
						assert.False(t, arg.ScheduleBlockID.Valid)
						return sqlc.Drops{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, d *domdrop.Drop, tx sqlc.DBTX) {
				mock.EXPECT().CreateDrop(ctx, tx, gomock.Any()).Return(sqlc.Drops{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: unknown operator",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, d *domdrop.Drop, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateDrop(ctx, tx, gomock.Any()).Return(sqlc.Drops{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: duplicate id",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, d *domdrop.Drop, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateDrop(ctx, tx, gomock.Any()).Return(sqlc.Drops{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDropRepository(mockQueries, mockDB)

			d, err := builder.NewDropBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, d, mockDB)

			actualError := repo.Create(ctx, mockDB, d)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Lock Tests
// =============================================================================

func TestDropRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	dropID := uuid.New()
	operatorID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDropWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row converted to domain drop",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetDropForUpdate(ctx, tx, dropID).Return(dropRow(dropID, operatorID, "live"), nil)
			},
		},
		{
			name: "error: no rows is not found",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetDropForUpdate(ctx, tx, dropID).Return(sqlc.Drops{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetDropForUpdate(ctx, tx, dropID).Return(sqlc.Drops{}, errors.New("lock timeout"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDropRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			d, err := repo.LockByID(ctx, mockDB, dropID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, dropID, d.ID())
			assert.Equal(t, operatorID, d.OperatorID())
			assert.Equal(t, domdrop.StatusLive, d.Status())
			assert.Equal(t, launchedAt.Add(90*time.Second), d.ExpiresAt())
			assert.Nil(t, d.ScheduleBlockID())
		})
	}
}

func TestDropRepository_LockOwned(t *testing.T) {
	ctx := context.Background()
	dropID := uuid.New()
	operatorID := uuid.New()

	t.Run("success: params carry both ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDropRepository(mockQueries, mockDB)
		mockQueries.EXPECT().
			GetOwnedDropForUpdate(ctx, mockDB, sqlc.GetOwnedDropForUpdateParams{ID: dropID, OperatorID: operatorID}).
			Return(dropRow(dropID, operatorID, "filled"), nil)

		d, err := repo.LockOwned(ctx, mockDB, dropID, operatorID)

		require.NoError(t, err)
		assert.Equal(t, domdrop.StatusFilled, d.Status())
	})

	t.Run("error: drop of another operator is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDropRepository(mockQueries, mockDB)
		mockQueries.EXPECT().GetOwnedDropForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.Drops{}, pgx.ErrNoRows)

		_, err := repo.LockOwned(ctx, mockDB, dropID, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Status Transition Tests
// =============================================================================

func TestDropRepository_Transitions(t *testing.T) {
	ctx := context.Background()
	dropID := uuid.New()
	operatorID := uuid.New()

	type call func(repo *repository.DropRepository, tx sqlc.DBTX) (bool, error)

	testCases := []struct {
		name      string
		setupMock func(*repositorymock.MockDropWriteQueries, sqlc.DBTX, int64, error)
		call      call
	}{
		{
			name: "MarkExpired",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, tx sqlc.DBTX, n int64, err error) {
				mock.EXPECT().MarkDropExpired(ctx, tx, dropID).Return(n, err)
			},
			call: func(repo *repository.DropRepository, tx sqlc.DBTX) (bool, error) {
				return repo.MarkExpired(ctx, tx, dropID)
			},
		},
		{
			name: "MarkFilled",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, tx sqlc.DBTX, n int64, err error) {
				mock.EXPECT().MarkDropFilled(ctx, tx, dropID).Return(n, err)
			},
			call: func(repo *repository.DropRepository, tx sqlc.DBTX) (bool, error) {
				return repo.MarkFilled(ctx, tx, dropID)
			},
		},
		{
			name: "Cancel",
			setupMock: func(mock *repositorymock.MockDropWriteQueries, tx sqlc.DBTX, n int64, err error) {
				mock.EXPECT().CancelDrop(ctx, tx, sqlc.CancelDropParams{ID: dropID, OperatorID: operatorID}).Return(n, err)
			},
			call: func(repo *repository.DropRepository, tx sqlc.DBTX) (bool, error) {
				return repo.Cancel(ctx, tx, dropID, operatorID)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name+": one row updated", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB, 1, nil)

			ok, err := tc.call(repository.NewDropRepository(mockQueries, mockDB), mockDB)

			require.NoError(t, err)
			assert.True(t, ok)
		})

		t.Run(tc.name+": no longer live", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB, 0, nil)

			ok, err := tc.call(repository.NewDropRepository(mockQueries, mockDB), mockDB)

			require.NoError(t, err)
			assert.False(t, ok)
		})

		t.Run(tc.name+": database error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			tc.setupMock(mockQueries, mockDB, 0, errors.New("connection reset"))

			ok, err := tc.call(repository.NewDropRepository(mockQueries, mockDB), mockDB)

			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			assert.False(t, ok)
		})
	}
}

func TestDropRepository_Extend(t *testing.T) {
	ctx := context.Background()
	dropID := uuid.New()
	operatorID := uuid.New()
	params := sqlc.ExtendDropParams{Seconds: 30, ID: dropID, OperatorID: operatorID}

	t.Run("success: extended row returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		row := dropRow(dropID, operatorID, "live")
		row.TimerSeconds = 120
		row.ExpiresAt = pgconv.TimeToPgtype(launchedAt.Add(120 * time.Second))
		mockQueries.EXPECT().ExtendDrop(ctx, mockDB, params).Return(row, nil)

		d, ok, err := repository.NewDropRepository(mockQueries, mockDB).Extend(ctx, mockDB, dropID, operatorID, 30)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int32(120), d.TimerSeconds())
		assert.Equal(t, launchedAt.Add(120*time.Second), d.ExpiresAt())
	})

	t.Run("success: no rows means not live", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ExtendDrop(ctx, mockDB, params).Return(sqlc.Drops{}, pgx.ErrNoRows)

		d, ok, err := repository.NewDropRepository(mockQueries, mockDB).Extend(ctx, mockDB, dropID, operatorID, 30)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, d)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ExtendDrop(ctx, mockDB, params).Return(sqlc.Drops{}, errors.New("boom"))

		_, ok, err := repository.NewDropRepository(mockQueries, mockDB).Extend(ctx, mockDB, dropID, operatorID, 30)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, ok)
	})
}

func TestDropRepository_ExpireDue(t *testing.T) {
	ctx := context.Background()
	now := launchedAt.Add(5 * time.Minute)

	t.Run("success: expired rows mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		a := sqlc.ExpireDueDropsRow{ID: uuid.New(), OperatorID: uuid.New()}
		b := sqlc.ExpireDueDropsRow{ID: uuid.New(), OperatorID: uuid.New()}
		mockQueries.EXPECT().ExpireDueDrops(ctx, mockDB, pgconv.TimeToPgtype(now)).Return([]sqlc.ExpireDueDropsRow{a, b}, nil)

		expired, err := repository.NewDropRepository(mockQueries, mockDB).ExpireDue(ctx, mockDB, now)

		require.NoError(t, err)
		require.Len(t, expired, 2)
		assert.Equal(t, a.ID, expired[0].ID)
		assert.Equal(t, a.OperatorID, expired[0].OperatorID)
		assert.Equal(t, b.ID, expired[1].ID)
	})

	t.Run("success: nothing due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ExpireDueDrops(ctx, mockDB, gomock.Any()).Return(nil, nil)

		expired, err := repository.NewDropRepository(mockQueries, mockDB).ExpireDue(ctx, mockDB, now)

		require.NoError(t, err)
		assert.Empty(t, expired)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDropWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ExpireDueDrops(ctx, mockDB, gomock.Any()).Return(nil, errors.New("boom"))

		_, err := repository.NewDropRepository(mockQueries, mockDB).ExpireDue(ctx, mockDB, now)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Test Helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
