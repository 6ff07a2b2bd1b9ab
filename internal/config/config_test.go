package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ORIGIN", "http://a.example, http://b.example ,")
	t.Setenv("STATS_CACHE_TTL", "1m")
	t.Setenv("SMTP_HOST", "")

	cfg := Load()
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "carewave.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, time.Minute, cfg.StatsCacheTTL)
	assert.False(t, cfg.SMTP.Enabled())
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")
	assert.Empty(t, Load().TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 192.168.0.0/16")
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, Load().TrustedProxies)
}

func TestLogSettings(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	env, level := LogSettings()
	assert.Equal(t, "development", env)
	assert.Equal(t, "info", level)

	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	env, level = LogSettings()
	assert.Equal(t, "production", env)
	assert.Equal(t, "warn", level)
}

func TestLoadGeneratesSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := Load()
	assert.Len(t, cfg.JWTSecret, 48)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CAREWAVE_INT", "42")
	t.Setenv("CAREWAVE_BAD_INT", "forty-two")
	t.Setenv("CAREWAVE_DURATION", "90s")
	t.Setenv("CAREWAVE_BAD_DURATION", "soon")

	assert.Equal(t, "fallback", getEnv("CAREWAVE_UNSET", "fallback"))
	assert.Equal(t, 42, getEnvInt("CAREWAVE_INT", 1))
	assert.Equal(t, 1, getEnvInt("CAREWAVE_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, getEnvDuration("CAREWAVE_DURATION", time.Second))
	assert.Equal(t, time.Second, getEnvDuration("CAREWAVE_BAD_DURATION", time.Second))
}

func TestProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).Production())
	assert.False(t, (&Config{Env: "development"}).Production())
}
