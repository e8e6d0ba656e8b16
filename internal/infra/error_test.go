//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"drop-arbiter/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "other PostgreSQL error", err: &pgconn.PgError{Code: "57014"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: &pgconn.PgError{Code: "23505"}, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "nil error with explicit kind", kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("insert claim", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), "insert claim")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestIsKind_UnrelatedError(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("boom"), infra.KindDBFailure))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
}
