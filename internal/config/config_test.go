package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Blank these out so host environment values cannot leak in.
	t.Setenv("PORT", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("BODY_LIMIT_BYTES", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 4*1024*1024, cfg.BodyLimit)
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
	assert.Contains(t, cfg.DSN(), "TimeZone=UTC")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_ACCESS_EXPIRY", "24h")
	t.Setenv("BODY_LIMIT_BYTES", "1024")
	t.Setenv("JWT_SECRET", "real-secret")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 1024, cfg.BodyLimit)
	assert.Equal(t, "real-secret", cfg.JWTSecret)
}

func TestBadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")
	t.Setenv("BODY_LIMIT_BYTES", "-5")

	cfg := Load()
	assert.Equal(t, 168*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, 4*1024*1024, cfg.BodyLimit)
}
