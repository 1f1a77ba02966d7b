package config

import (
	"log"
	"os"
	"time"
)

type AuthConfig struct {
	// ResetTokenTTL bounds how long a mailed reset link stays valid.
	ResetTokenTTL time.Duration
	// ResetURLBase is the frontend page the reset link points at; the raw
	// token is appended as a query parameter.
	ResetURLBase string
}

func LoadAuthConfig() AuthConfig {
	LoadEnv()

	ttl := time.Hour
	if ttlStr := os.Getenv("RESET_TOKEN_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		} else {
			log.Printf("invalid RESET_TOKEN_TTL value %q, using default %s", ttlStr, ttl)
		}
	}

	base := os.Getenv("PASSWORD_RESET_URL")
	if base == "" {
		base = "/auth/reset-password"
	}

	return AuthConfig{
		ResetTokenTTL: ttl,
		ResetURLBase:  base,
	}
}
