package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, VerifyPassword("s3cret-pass", hash))
	require.False(t, VerifyPassword("s3cret-pass2", hash))
	require.False(t, VerifyPassword("", hash))
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("same-input", first))
	require.True(t, VerifyPassword("same-input", second))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	require.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	require.False(t, VerifyPassword("anything", ""))
}
