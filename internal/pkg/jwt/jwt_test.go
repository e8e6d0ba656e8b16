//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"drop-arbiter/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	operatorID := uuid.New()

	t.Run("round trip keeps operator identity", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken(operatorID, "Iron Forge Fitness")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, operatorID, claims.OperatorID)
		assert.Equal(t, "Iron Forge Fitness", claims.BusinessName)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(operatorID, "x")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(operatorID, "x")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	forge := func(t *testing.T, method gojwt.SigningMethod, key any, mutate func(*jwt.Claims)) string {
		t.Helper()
		claims := jwt.Claims{
			OperatorID: operatorID,
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				Subject:   operatorID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		mutate(&claims)
		token, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	rejected := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "foreign issuer", token: func(t *testing.T) string {
			return forge(t, gojwt.SigningMethodHS256, []byte("secret"), func(c *jwt.Claims) { c.Issuer = "someone-else" })
		}},
		{name: "no expiry", token: func(t *testing.T) string {
			return forge(t, gojwt.SigningMethodHS256, []byte("secret"), func(c *jwt.Claims) { c.ExpiresAt = nil })
		}},
		{name: "subject disagrees with operator", token: func(t *testing.T) string {
			return forge(t, gojwt.SigningMethodHS256, []byte("secret"), func(c *jwt.Claims) { c.Subject = uuid.NewString() })
		}},
		{name: "unsigned token", token: func(t *testing.T) string {
			return forge(t, gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, func(*jwt.Claims) {})
		}},
		{name: "HS512 instead of HS256", token: func(t *testing.T) string {
			return forge(t, gojwt.SigningMethodHS512, []byte("secret"), func(*jwt.Claims) {})
		}},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jwt.NewService("secret", time.Hour).ValidateToken(tt.token(t))
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
