package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", s.Addr())
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, "openai", s.LLM.Provider)
	assert.Equal(t, 24*time.Hour, s.SessionTTL)
	assert.Equal(t, "./flows", s.FlowsDir)
	assert.Equal(t, "ws://127.0.0.1:8000/ws/session", s.EngineWSBaseURL)
	assert.Equal(t, "http://127.0.0.1:8000", s.EngineHTTPBaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_PROVIDER", "deepseek")
	t.Setenv("LLM_MODEL", "deepseek-chat")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9100, s.Port)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, "deepseek", s.LLM.Provider)
	assert.Equal(t, "deepseek-chat", s.LLM.Model)
	assert.Equal(t, 2*time.Hour, s.SessionTTL)
	assert.Equal(t, "redis://localhost:6379/0", s.RedisURL)
	assert.Equal(t, "ws://127.0.0.1:9100/ws/session", s.EngineWSBaseURL)
}

func TestLoadOverlayOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("FLOW_HOST_VAR", "flows.example.com")

	overlay := `
port: 9200
log_level: warn
llm:
  model: gpt-4o
session_ttl: 30m
webhook_base_url: "https://{{.FLOW_HOST_VAR}}"
`
	path := filepath.Join(t.TempDir(), "easypath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9200, s.Port)
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
	assert.Equal(t, "gpt-4o", s.LLM.Model)
	assert.Equal(t, 30*time.Minute, s.SessionTTL)
	assert.Equal(t, "https://flows.example.com", s.WebhookBaseURL)
}

func TestLoadMissingOverlay(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load("")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "PORT", verr.Field)
}

func TestLoadIgnoresMalformedDurations(t *testing.T) {
	t.Setenv("SESSION_TTL", "sometimes")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, s.SessionTTL)
}
