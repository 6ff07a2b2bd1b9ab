package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevLogger, prevLevel := logOutput, log.Logger, zerolog.GlobalLevel()
	logOutput = &buf
	t.Cleanup(func() {
		logOutput = prevOut
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestLoadConfigLogsWarningsThroughConfiguredLogger(t *testing.T) {
	buf := captureLogs(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "memory")

	cfg := loadConfig()
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Len(t, cfg.JWTSecret, 48)

	var warning map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "production logs are JSON: %q", line)
		if msg, _ := entry["message"].(string); strings.Contains(msg, "JWT_SECRET") {
			warning = entry
		}
	}
	require.NotNil(t, warning, "the missing secret warning is written by the configured logger")
	assert.Equal(t, "warn", warning["level"])
}

func TestLoadConfigHonoursLogLevelForStartupWarnings(t *testing.T) {
	buf := captureLogs(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STATS_CACHE_TTL", "soon")

	loadConfig()
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
	assert.Empty(t, buf.String())
}

func TestSetupLoggerFallsBackToInfo(t *testing.T) {
	captureLogs(t)
	setupLogger("development", "chatty")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
