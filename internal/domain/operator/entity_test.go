//go:build unit

package operator_test

import (
	"strings"
	"testing"
	"time"

	"drop-arbiter/internal/domain/operator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperator(t *testing.T) {
	now := time.Now()

	op, err := operator.NewOperator(uuid.Nil, " Iron Forge ", "code-123", now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, op.ID())
	assert.Equal(t, "Iron Forge", op.BusinessName())

	assert.NoError(t, op.VerifyAccessCode("code-123"))
	assert.ErrorIs(t, op.VerifyAccessCode("nope"), operator.ErrInvalidCredentials)

	_, err = operator.NewOperator(uuid.New(), "", "x", now)
	assert.ErrorIs(t, err, operator.ErrBusinessNameRequired)
	_, err = operator.NewOperator(uuid.New(), "x", "", now)
	assert.ErrorIs(t, err, operator.ErrAccessCodeRequired)
	_, err = operator.NewOperator(uuid.New(), "x", strings.Repeat("c", 80), now)
	assert.ErrorIs(t, err, operator.ErrAccessCodeTooLong)
}
