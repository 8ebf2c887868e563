package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Decode(t *testing.T) {
	svc := NewTokenService("unit-test-secret", time.Hour)

	t.Run("issue then decode round-trips the subject", func(t *testing.T) {
		token, err := svc.Issue("user-123")
		require.NoError(t, err)

		sub, err := svc.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", sub)
	})

	t.Run("expired token fails with ErrTokenExpired", func(t *testing.T) {
		expired := NewTokenService("unit-test-secret", -time.Minute)
		token, err := expired.Issue("user-123")
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("token signed with another secret fails with ErrTokenInvalid", func(t *testing.T) {
		other := NewTokenService("some-other-secret", time.Hour)
		token, err := other.Issue("user-123")
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("non-token input fails with ErrTokenMalformed", func(t *testing.T) {
		_, err := svc.Decode("definitely not a jwt")
		assert.ErrorIs(t, err, ErrTokenMalformed)

		_, err = svc.Decode("")
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("token without a subject claim fails with ErrTokenInvalid", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := raw.SignedString([]byte("unit-test-secret"))
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("unexpected signing algorithm is rejected", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := raw.SignedString([]byte("unit-test-secret"))
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
