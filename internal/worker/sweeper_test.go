//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/usecase/shared"
	"drop-arbiter/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpirer struct {
	calls atomic.Int32
	err   error
	due   []shared.ExpiredDrop
}

func (s *stubExpirer) ExpireDue(context.Context) ([]shared.ExpiredDrop, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.due, nil
}

type stubPurger struct {
	calls atomic.Int32
	at    atomic.Value
}

func (p *stubPurger) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	p.calls.Add(1)
	p.at.Store(now)
	return 3, nil
}

func TestSweeper_SweepOnce(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC))

	t.Run("reports expired drops", func(t *testing.T) {
		exp := &stubExpirer{due: []shared.ExpiredDrop{{ID: uuid.New(), OperatorID: uuid.New()}}}
		s := worker.NewSweeper(exp, nil, clk, config.SweeperConfig{}, nil)

		assert.Equal(t, 1, s.SweepOnce(context.Background()))
	})

	t.Run("swallows failures", func(t *testing.T) {
		exp := &stubExpirer{err: errors.New("db down")}
		s := worker.NewSweeper(exp, nil, clk, config.SweeperConfig{}, nil)

		assert.Equal(t, 0, s.SweepOnce(context.Background()))
	})
}

func TestSweeper_PurgeOnce(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	purger := &stubPurger{}
	s := worker.NewSweeper(&stubExpirer{}, purger, clock.NewMockClock(now), config.SweeperConfig{}, nil)

	assert.Equal(t, 3, s.PurgeOnce(context.Background()))
	assert.Equal(t, now, purger.at.Load())
}

func TestSweeper_Lifecycle(t *testing.T) {
	exp := &stubExpirer{}
	purger := &stubPurger{}
	cfg := config.SweeperConfig{
		Interval:              10 * time.Millisecond,
		IdempotencyPurgeEvery: 10 * time.Millisecond,
	}
	s := worker.NewSweeper(exp, purger, clock.NewRealClock(), cfg, nil)

	s.Start()
	s.Start()

	require.Eventually(t, func() bool {
		return exp.calls.Load() >= 2 && purger.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, s.Stop(ctx))

	after := exp.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, exp.calls.Load())
}
