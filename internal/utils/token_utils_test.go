package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateJWT("admin-1", "root", "secret", time.Hour, "issuer")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret", "issuer")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "root", claims.Name)
}

func TestJWT_Rejections(t *testing.T) {
	token, _, err := GenerateJWT("admin-1", "root", "secret", time.Hour, "issuer")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret", "issuer")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)

	expired, _, err := GenerateJWT("admin-1", "root", "secret", -time.Minute, "issuer")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "issuer")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}

func TestNewSigningKey(t *testing.T) {
	a, err := NewSigningKey(0)
	require.NoError(t, err)
	assert.Len(t, a, MinSigningKeyBytes*2)

	b, err := NewSigningKey(48)
	require.NoError(t, err)
	assert.Len(t, b, 96)
	assert.NotEqual(t, a, b[:len(a)])
}
