package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-signing-key"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(testKey, time.Hour, 42, "anna", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "anna", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := GenerateToken(testKey, time.Hour, 1, "anna", "client")
	require.NoError(t, err)

	_, err = ValidateToken("a-different-key", token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(testKey, -time.Minute, 1, "anna", "client")
	require.NoError(t, err)

	_, err = ValidateToken(testKey, token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken(testKey, "not.a.token")
	assert.Error(t, err)
}

func TestGenerateTokenEmptyKey(t *testing.T) {
	_, err := GenerateToken("", time.Hour, 1, "anna", "client")
	assert.Error(t, err)
}
