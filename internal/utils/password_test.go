package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22secret", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword(hash, "hunter22secret"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}

func TestHashPasswordClampsCost(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of erroring.
	for _, cost := range []int{-1, 0, 99} {
		hash, err := HashPassword("pw123456", cost)
		require.NoError(t, err)
		assert.True(t, VerifyPassword(hash, "pw123456"))
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("", "pw"))
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "pw"))
}
