//go:build unit

package drop_test

import (
	"math"
	"testing"
	"time"

	"drop-arbiter/internal/domain/drop"
	"drop-arbiter/internal/pkg/errs"
	"drop-arbiter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DropBuilder)
	errIs  error
}

func TestNewDrop(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewDropBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, drop.StatusLive, actual.Status())
		assert.Equal(t, b.Now, actual.LaunchedAt())
		assert.Equal(t, b.Now.Add(90*time.Second), actual.ExpiresAt())
		assert.Equal(t, int32(2), actual.SpotsAvailable())
	})

	t.Run("title is trimmed", func(t *testing.T) {
		actual, err := builder.NewDropBuilder().WithTitle("  Open Gym  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Open Gym", actual.Title())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero spots", mutate: func(b *builder.DropBuilder) { b.WithSpots(0) }, errIs: drop.ErrInvalidSpots},
			{name: "negative spots", mutate: func(b *builder.DropBuilder) { b.WithSpots(-1) }, errIs: drop.ErrInvalidSpots},
			{name: "one spot", mutate: func(b *builder.DropBuilder) { b.WithSpots(1) }},
			{name: "free drop", mutate: func(b *builder.DropBuilder) { b.WithPrice(0) }},
			{name: "negative price", mutate: func(b *builder.DropBuilder) { b.WithPrice(-1) }, errIs: drop.ErrInvalidPrice},
			{name: "zero timer", mutate: func(b *builder.DropBuilder) { b.WithTimer(0) }, errIs: drop.ErrInvalidTimer},
			{name: "blank title", mutate: func(b *builder.DropBuilder) { b.WithTitle("   ") }, errIs: drop.ErrTitleRequired},
			{name: "missing offering", mutate: func(b *builder.DropBuilder) { b.WithOfferingID(uuid.Nil) }, errIs: drop.ErrOfferingRequired},
			{name: "missing operator", mutate: func(b *builder.DropBuilder) { b.WithOperatorID(uuid.Nil) }, errIs: drop.ErrOperatorRequired},
		})
	})

	t.Run("validation errors are classified", func(t *testing.T) {
		_, err := builder.NewDropBuilder().WithSpots(0).BuildDomain()
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestDrop_Expiry(t *testing.T) {
	b := builder.NewDropBuilder().WithTimer(60)
	d, err := b.BuildDomain()
	require.NoError(t, err)

	assert.False(t, d.IsExpiredAt(b.Now.Add(59*time.Second)))
	assert.True(t, d.IsExpiredAt(b.Now.Add(60*time.Second)), "expires_at itself counts as expired")
	assert.True(t, d.IsDueAt(b.Now.Add(61*time.Second)))

	require.NoError(t, d.Fill())
	assert.False(t, d.IsDueAt(b.Now.Add(61*time.Second)), "terminal drops are never due")
}

func TestDrop_Checks(t *testing.T) {
	b := builder.NewDropBuilder().WithTimer(60)
	before := b.Now.Add(10 * time.Second)
	after := b.Now.Add(2 * time.Minute)

	t.Run("claimable", func(t *testing.T) {
		assert.NoError(t, b.BuildWithStatus(drop.StatusLive).CheckClaimable(before))
		assert.ErrorIs(t, b.BuildWithStatus(drop.StatusLive).CheckClaimable(after), drop.ErrExpired)
		assert.ErrorIs(t, b.BuildWithStatus(drop.StatusFilled).CheckClaimable(before), drop.ErrNotLive)
	})

	t.Run("confirmable reports actual status", func(t *testing.T) {
		err := b.BuildWithStatus(drop.StatusCancelled).CheckConfirmable(before)
		require.Error(t, err)
		assert.Equal(t, "Drop is cancelled; cannot confirm more claims", err.Error())
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.ErrorIs(t, b.BuildWithStatus(drop.StatusLive).CheckConfirmable(after), drop.ErrExpired)
	})

	t.Run("cancellable", func(t *testing.T) {
		assert.ErrorIs(t, b.BuildWithStatus(drop.StatusFilled).CheckCancellable(), drop.ErrCannotCancelFilled)
		assert.ErrorIs(t, b.BuildWithStatus(drop.StatusExpired).CheckCancellable(), drop.ErrNotCancellable)
		assert.NoError(t, b.BuildWithStatus(drop.StatusLive).CheckCancellable())
	})
}

func TestDrop_Transitions(t *testing.T) {
	b := builder.NewDropBuilder()

	t.Run("terminal states are final", func(t *testing.T) {
		for _, terminal := range []drop.Status{drop.StatusFilled, drop.StatusExpired, drop.StatusCancelled} {
			d := b.BuildWithStatus(terminal)
			assert.Error(t, d.Fill())
			assert.Error(t, d.Expire())
			assert.Error(t, d.Cancel())
			assert.ErrorIs(t, d.Extend(30), drop.ErrNotExtendable)
			assert.Equal(t, terminal, d.Status())
		}
	})

	t.Run("extend moves the deadline and the timer", func(t *testing.T) {
		d := b.BuildWithStatus(drop.StatusLive)
		deadline := d.ExpiresAt()
		require.NoError(t, d.Extend(30))
		assert.Equal(t, deadline.Add(30*time.Second), d.ExpiresAt())
		assert.Equal(t, b.TimerSeconds+30, d.TimerSeconds())
	})

	t.Run("extend past the timer maximum is rejected without changes", func(t *testing.T) {
		d := b.BuildWithStatus(drop.StatusLive)
		deadline := d.ExpiresAt()

		err := d.Extend(math.MaxInt32)

		assert.ErrorIs(t, err, drop.ErrTimerOverflow)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, b.TimerSeconds, d.TimerSeconds())
		assert.Equal(t, deadline, d.ExpiresAt())
		require.NoError(t, d.Extend(math.MaxInt32-b.TimerSeconds))
		assert.Equal(t, int32(math.MaxInt32), d.TimerSeconds())
	})

	t.Run("capacity", func(t *testing.T) {
		d := b.BuildWithStatus(drop.StatusLive)
		assert.False(t, d.IsFullWith(1))
		assert.True(t, d.IsFullWith(2))
	})
}

func TestParseStatus(t *testing.T) {
	s, err := drop.ParseStatus("filled")
	require.NoError(t, err)
	assert.Equal(t, drop.StatusFilled, s)
	assert.True(t, s.IsTerminal())

	_, err = drop.ParseStatus("paused")
	assert.ErrorIs(t, err, drop.ErrInvalidStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewDropBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
