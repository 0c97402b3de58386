package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "STORE_DRIVER", "DB_PATH", "GEMINI_API_KEY", "GEMINI_MODEL", "INFERENCE_TIMEOUT", "SCAN_RATE_LIMIT", "KB_STRICT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "json", cfg.StoreDriver)
	assert.Equal(t, "data/db.json", cfg.DBPath)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.InferenceTimeout)
	assert.InDelta(t, 2.0, cfg.ScanRateLimit, 1e-9)
	assert.False(t, cfg.KBStrict)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("INFERENCE_TIMEOUT", "5s")
	t.Setenv("SCAN_RATE_LIMIT", "0")
	t.Setenv("KB_STRICT", "true")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.InferenceTimeout)
	assert.Zero(t, cfg.ScanRateLimit)
	assert.True(t, cfg.KBStrict)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INFERENCE_TIMEOUT", "soon")
	t.Setenv("SCAN_RATE_LIMIT", "-3")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.InferenceTimeout)
	assert.InDelta(t, 2.0, cfg.ScanRateLimit, 1e-9)
}

func TestLogValue_HidesAPIKey(t *testing.T) {
	cfg := AppConfig{GeminiAPIKey: "super-secret"}

	var sb strings.Builder
	logger := slog.New(slog.NewTextHandler(&sb, nil))
	logger.Info("config", "cfg", cfg)

	assert.NotContains(t, sb.String(), "super-secret")
	assert.Contains(t, sb.String(), "gemini_key_present=true")
}
