// Package config resolves the platform's runtime settings from
// environment variables, with an optional YAML overlay for the
// non-secret knobs. Secrets (API keys, the bot-token sealing secret,
// database credentials) come from the environment only.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/easypath-ai/easypath/pkg/llm"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Host     string
	Port     int
	LogLevel slog.Level

	LLM llm.Config

	// RedisURL enables the Redis session store; empty falls back to the
	// in-process store.
	RedisURL   string
	SessionTTL time.Duration

	// WebhookBaseURL is the public HTTPS base Telegram calls back on.
	WebhookBaseURL string
	// FlowsDir holds one <flow_id>.json per published flow.
	FlowsDir string
	// BotTokenSecret seals platform bot tokens at rest.
	BotTokenSecret string

	// EngineWSBaseURL and EngineHTTPBaseURL point the adapter's stream
	// pool and fallback client at the engine endpoints. They default to
	// this process's own listener.
	EngineWSBaseURL   string
	EngineHTTPBaseURL string

	WSWriteTimeout   time.Duration
	WSConnectTimeout time.Duration
	WSCleanupDelay   time.Duration

	// Retention policy for gateway conversations.
	RetentionIdleClose time.Duration
	RetentionArchive   time.Duration
	RetentionInterval  time.Duration
}

// yamlSettings is the overlay file shape. Durations are strings in
// time.ParseDuration form.
type yamlSettings struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		BaseURL  string `yaml:"base_url"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"llm"`

	RedisURL   string `yaml:"redis_url"`
	SessionTTL string `yaml:"session_ttl"`

	WebhookBaseURL string `yaml:"webhook_base_url"`
	FlowsDir       string `yaml:"flows_dir"`

	EngineWSBaseURL   string `yaml:"engine_ws_base_url"`
	EngineHTTPBaseURL string `yaml:"engine_http_base_url"`

	WSWriteTimeout   string `yaml:"ws_write_timeout"`
	WSConnectTimeout string `yaml:"ws_connect_timeout"`
	WSCleanupDelay   string `yaml:"ws_cleanup_delay"`

	RetentionIdleClose string `yaml:"retention_idle_close"`
	RetentionArchive   string `yaml:"retention_archive"`
	RetentionInterval  string `yaml:"retention_interval"`
}

// Load resolves settings from the environment, then applies the YAML
// overlay at configPath when the file exists. An empty configPath skips
// the overlay entirely.
func Load(configPath string) (*Settings, error) {
	s := fromEnv()

	if configPath != "" {
		if err := s.applyOverlay(configPath); err != nil {
			return nil, err
		}
	}

	s.applyDerived()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func fromEnv() *Settings {
	return &Settings{
		Host:     envOr("HOST", "0.0.0.0"),
		Port:     envInt("PORT", 8000),
		LogLevel: parseLogLevel(os.Getenv("LOG_LEVEL")),
		LLM: llm.Config{
			Provider: envOr("LLM_PROVIDER", llm.ProviderOpenAI),
			Model:    os.Getenv("LLM_MODEL"),
			APIKey:   envOr("LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			Timeout:  envDuration("LLM_TIMEOUT", 60*time.Second),
		},
		RedisURL:           os.Getenv("REDIS_URL"),
		SessionTTL:         envDuration("SESSION_TTL", 24*time.Hour),
		WebhookBaseURL:     os.Getenv("WEBHOOK_BASE_URL"),
		FlowsDir:           envOr("FLOWS_DIR", "./flows"),
		BotTokenSecret:     os.Getenv("BOT_TOKEN_SECRET"),
		EngineWSBaseURL:    os.Getenv("ENGINE_WS_URL"),
		EngineHTTPBaseURL:  os.Getenv("ENGINE_HTTP_URL"),
		WSWriteTimeout:     envDuration("WS_WRITE_TIMEOUT", 10*time.Second),
		WSConnectTimeout:   envDuration("WS_CONNECT_TIMEOUT", 10*time.Second),
		WSCleanupDelay:     envDuration("WS_CLEANUP_DELAY", 5*time.Minute),
		RetentionIdleClose: envDuration("RETENTION_IDLE_CLOSE", 7*24*time.Hour),
		RetentionArchive:   envDuration("RETENTION_ARCHIVE_AFTER", 30*24*time.Hour),
		RetentionInterval:  envDuration("RETENTION_INTERVAL", time.Hour),
	}
}

// applyOverlay merges the YAML file on top of the env-derived settings.
// Only set fields override.
func (s *Settings) applyOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewLoadError(path, ErrConfigNotFound)
		}
		return NewLoadError(path, err)
	}

	// {{.VAR}} template expansion, so overlays can reference env vars
	// without shell interpolation.
	data = ExpandEnv(data)

	var y yamlSettings
	if err := yaml.Unmarshal(data, &y); err != nil {
		return NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	setString(&s.Host, y.Host)
	if y.Port != 0 {
		s.Port = y.Port
	}
	if y.LogLevel != "" {
		s.LogLevel = parseLogLevel(y.LogLevel)
	}
	setString(&s.LLM.Provider, y.LLM.Provider)
	setString(&s.LLM.Model, y.LLM.Model)
	setString(&s.LLM.BaseURL, y.LLM.BaseURL)
	setDuration(&s.LLM.Timeout, y.LLM.Timeout, path)
	setString(&s.RedisURL, y.RedisURL)
	setDuration(&s.SessionTTL, y.SessionTTL, path)
	setString(&s.WebhookBaseURL, y.WebhookBaseURL)
	setString(&s.FlowsDir, y.FlowsDir)
	setString(&s.EngineWSBaseURL, y.EngineWSBaseURL)
	setString(&s.EngineHTTPBaseURL, y.EngineHTTPBaseURL)
	setDuration(&s.WSWriteTimeout, y.WSWriteTimeout, path)
	setDuration(&s.WSConnectTimeout, y.WSConnectTimeout, path)
	setDuration(&s.WSCleanupDelay, y.WSCleanupDelay, path)
	setDuration(&s.RetentionIdleClose, y.RetentionIdleClose, path)
	setDuration(&s.RetentionArchive, y.RetentionArchive, path)
	setDuration(&s.RetentionInterval, y.RetentionInterval, path)
	return nil
}

// applyDerived fills endpoint defaults that depend on other settings.
func (s *Settings) applyDerived() {
	if s.EngineWSBaseURL == "" {
		s.EngineWSBaseURL = fmt.Sprintf("ws://127.0.0.1:%d/ws/session", s.Port)
	}
	if s.EngineHTTPBaseURL == "" {
		s.EngineHTTPBaseURL = fmt.Sprintf("http://127.0.0.1:%d", s.Port)
	}
}

func (s *Settings) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("PORT", fmt.Errorf("%w: %d", ErrInvalidValue, s.Port))
	}
	if s.SessionTTL <= 0 {
		return NewValidationError("SESSION_TTL", fmt.Errorf("%w: %s", ErrInvalidValue, s.SessionTTL))
	}
	if s.FlowsDir == "" {
		return NewValidationError("FLOWS_DIR", ErrMissingRequiredField)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Invalid integer setting, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration setting, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return d
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, raw, file string) {
	if raw == "" {
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration in overlay, keeping previous value",
			"file", file, "value", raw)
		return
	}
	*dst = d
}
