//go:build unit

package password_test

import (
	"strings"
	"testing"

	"drop-arbiter/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("forge-2024")
	require.NoError(t, err)
	assert.NotEqual(t, "forge-2024", hash)

	tests := []struct {
		name    string
		hash    string
		code    string
		wantErr error
	}{
		{name: "matching code", hash: hash, code: "forge-2024"},
		{name: "wrong code", hash: hash, code: "wrong", wantErr: password.ErrMismatch},
		{name: "empty code", hash: hash, code: "", wantErr: password.ErrEmpty},
		{name: "no stored hash", hash: "", code: "forge-2024", wantErr: password.ErrMismatch},
		{name: "code past the bcrypt limit", hash: hash, code: strings.Repeat("x", 73), wantErr: password.ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.hash, tt.code)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHash_RejectsUnusableCodes(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmpty)

	_, err = password.Hash(strings.Repeat("x", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrTooLong)
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("not-a-bcrypt-hash", "forge-2024")

	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
