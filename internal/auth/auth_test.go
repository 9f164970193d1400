package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.True(t, VerifyPassword(hash, "Str0ng!pass"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", "user-123", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Sub)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "user-123", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("secret", "user-123", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}
