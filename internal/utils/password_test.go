package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	BcryptCost = 4
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-hash"))
}

func TestGeneratePassword(t *testing.T) {
	a, err := GeneratePassword(16)
	require.NoError(t, err)
	b, err := GeneratePassword(16)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	for _, r := range a {
		assert.Contains(t, passwordAlphabet, string(r))
	}
}
