package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	raw, digest, err := GenerateResetToken()
	require.NoError(t, err)

	// 32 random bytes hex-encoded.
	assert.Len(t, raw, 64)
	_, err = hex.DecodeString(raw)
	assert.NoError(t, err)

	assert.NotEqual(t, raw, digest)
	assert.Equal(t, HashResetToken(raw), digest)
}

func TestGenerateResetTokenUnique(t *testing.T) {
	first, _, err := GenerateResetToken()
	require.NoError(t, err)
	second, _, err := GenerateResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashResetTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashResetToken("abc"), HashResetToken("abc"))
	assert.NotEqual(t, HashResetToken("abc"), HashResetToken("abd"))
	assert.Len(t, HashResetToken("abc"), 64)
}

func TestBuildResetLink(t *testing.T) {
	assert.Equal(t, "https://x/reset?token=tok", BuildResetLink("https://x/reset", "tok"))
	assert.Equal(t, "https://x/reset?a=1&token=tok", BuildResetLink("https://x/reset?a=1", "tok"))
	assert.Equal(t, "https://x/reset?token=tok", BuildResetLink("https://x/reset?", "tok"))
	assert.Equal(t, "https://x/reset?token=a%2Fb", BuildResetLink("https://x/reset", "a/b"))
}
