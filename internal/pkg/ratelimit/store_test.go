//go:build unit

package ratelimit_test

import (
	"testing"
	"time"

	"drop-arbiter/internal/pkg/clock"
	"drop-arbiter/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestStore(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))

	t.Run("burst is honoured per key", func(t *testing.T) {
		s := ratelimit.NewStore(1, 2, ratelimit.WithNow(clk.Now))
		assert.True(t, s.Allow("a"))
		assert.True(t, s.Allow("a"))
		assert.False(t, s.Allow("a"))
		assert.True(t, s.Allow("b"), "keys are independent")
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		s := ratelimit.NewStore(1, 1, ratelimit.WithNow(clk.Now))
		assert.True(t, s.Allow("a"))
		assert.False(t, s.Allow("a"))
		clk.Add(time.Second)
		assert.True(t, s.Allow("a"))
	})

	t.Run("idle keys are evicted", func(t *testing.T) {
		s := ratelimit.NewStore(1, 1, ratelimit.WithNow(clk.Now), ratelimit.WithIdleTTL(time.Minute))
		s.Allow("a")
		clk.Add(2 * time.Minute)
		s.Allow("b")
		s.Cleanup()
		assert.Equal(t, 1, s.Len())
	})
}
