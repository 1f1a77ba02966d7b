package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// GenerateResetToken returns a raw reset token (64 hex characters covering
// 256 bits of randomness) together with its storage digest. Only the digest
// is ever written to the database; the raw token exists in the mailed link
// and nowhere else.
func GenerateResetToken() (raw string, digest string, err error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(tokenBytes)
	return raw, HashResetToken(raw), nil
}

// HashResetToken derives the deterministic lookup digest for a presented
// token. SHA-256, not bcrypt: the stored value is found by equality, and the
// token itself already carries full-entropy randomness.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// BuildResetLink appends the raw token to the configured reset page URL.
func BuildResetLink(base, token string) string {
	escapedToken := url.QueryEscape(token)
	if strings.Contains(base, "?") {
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			return base + "token=" + escapedToken
		}
		return base + "&token=" + escapedToken
	}
	return base + "?token=" + escapedToken
}
