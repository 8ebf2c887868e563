package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("hash verifies against original password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-password", hash)
		assert.True(t, VerifyPassword("s3cret-password", hash))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")
		require.NoError(t, err)
		assert.False(t, VerifyPassword("other-password", hash))
	})

	t.Run("malformed stored hash verifies false instead of erroring", func(t *testing.T) {
		assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
		assert.False(t, VerifyPassword("anything", ""))
	})

	t.Run("two hashes of the same password differ", func(t *testing.T) {
		h1, err := HashPassword("same")
		require.NoError(t, err)
		h2, err := HashPassword("same")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})
}
