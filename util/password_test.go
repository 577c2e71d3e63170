package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	stored, err := HashPassword("secret123")
	require.NoError(t, err)

	parts := strings.SplitN(stored, ":", 2)
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 32, "salt must be 16 bytes hex encoded")
	assert.Len(t, parts[1], 64, "hash must be sha-256 hex encoded")
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	passwords := []string{"secret123", "", "päss wörd", strings.Repeat("x", 300)}
	for _, p := range passwords {
		stored, err := HashPassword(p)
		require.NoError(t, err)
		assert.True(t, VerifyPassword(p, stored), "password %q must verify against its own hash", p)
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	stored, err := HashPassword("right password")
	require.NoError(t, err)
	assert.False(t, VerifyPassword("wrong password", stored))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "malformed-no-colon"))
	assert.False(t, VerifyPassword("anything", ""))
	assert.False(t, VerifyPassword("anything", ":"))
	assert.False(t, VerifyPassword("anything", "deadbeef:"))
}
