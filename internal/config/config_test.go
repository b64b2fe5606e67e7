package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"AUTH_PROVIDER", "PORT", "CORS_ORIGINS", "TOKEN_EXPIRY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "local", cfg.AuthProvider)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 168*time.Hour, cfg.TokenExpiry)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "hosted")
	t.Setenv("TOKEN_EXPIRY", "24h")
	t.Setenv("DB_NAME", "mamacare_test")

	cfg := Load()

	assert.Equal(t, "hosted", cfg.AuthProvider)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry)
	assert.Contains(t, cfg.DSN(), "dbname=mamacare_test")
}

func TestTokenExpiryFallback(t *testing.T) {
	t.Setenv("TOKEN_EXPIRY", "soon")

	cfg := Load()
	assert.Equal(t, 168*time.Hour, cfg.TokenExpiry)
}
