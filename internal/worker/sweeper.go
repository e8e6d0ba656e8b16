// Package worker runs the background passes that keep drops and the
// idempotency cache consistent without waiting for a request.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/usecase/shared"
)

const (
	defaultSweepInterval = 5 * time.Second
	defaultPurgeInterval = time.Minute
)

type DropExpirer interface {
	ExpireDue(ctx context.Context) ([]shared.ExpiredDrop, error)
}

type IdempotencyPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper expires due drops on a fixed interval and purges stale
// idempotency records on a slower one. A failed pass is logged and retried
// on the next tick.
type Sweeper struct {
	expirer       DropExpirer
	purger        IdempotencyPurger
	clock         clock.Clock
	sweepInterval time.Duration
	purgeInterval time.Duration
	logger        *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(expirer DropExpirer, purger IdempotencyPurger, clk clock.Clock, cfg config.SweeperConfig, logger *slog.Logger) *Sweeper {
	sweep := cfg.Interval
	if sweep <= 0 {
		sweep = defaultSweepInterval
	}
	purge := cfg.IdempotencyPurgeEvery
	if purge <= 0 {
		purge = defaultPurgeInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		expirer:       expirer,
		purger:        purger,
		clock:         clk,
		sweepInterval: sweep,
		purgeInterval: purge,
		logger:        logger,
	}
}

// Start is a no-op when the sweeper is already running.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx, s.sweepInterval, s.SweepOnce)
	if s.purger != nil {
		s.wg.Add(1)
		go s.loop(ctx, s.purgeInterval, s.PurgeOnce)
	}
	s.logger.Info("sweeper started",
		"sweep_interval", s.sweepInterval.String(),
		"purge_interval", s.purgeInterval.String())
}

// Stop waits for an in-flight pass to finish or ctx to end.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SweepOnce returns the number of drops it expired.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	expired, err := s.expirer.ExpireDue(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("expiry sweep failed", "error", err.Error())
		}
		return 0
	}
	return len(expired)
}

func (s *Sweeper) PurgeOnce(ctx context.Context) int {
	purged, err := s.purger.PurgeExpired(ctx, s.clock.Now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("idempotency purge failed", "error", err.Error())
		}
		return 0
	}
	if purged > 0 {
		s.logger.Debug("purged idempotency records", "count", purged)
	}
	return int(purged)
}

func (s *Sweeper) loop(ctx context.Context, interval time.Duration, pass func(context.Context) int) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pass(ctx)
		}
	}
}
