package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	m := NewTokenManager("secret")
	token, err := m.GenerateJWT("user-1", "admin@carewave.com", "Administrator")
	require.NoError(t, err)

	claims, err := m.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@carewave.com", claims.Email)
	assert.Equal(t, "Administrator", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateJWTRejects(t *testing.T) {
	m := NewTokenManager("secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenManager("other").GenerateJWT("user-1", "a@b.c", "Doctor")
		require.NoError(t, err)
		_, err = m.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenManager("secret")
		old.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }
		token, err := old.GenerateJWT("user-1", "a@b.c", "Doctor")
		require.NoError(t, err)
		_, err = m.ValidateJWT(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: "user-1"}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := m.ValidateJWT("abc.def")
		assert.Error(t, err)
	})

	t.Run("no secret", func(t *testing.T) {
		_, err := NewTokenManager("").GenerateJWT("user-1", "a@b.c", "Doctor")
		assert.Error(t, err)
	})
}
