package llm

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/models"
)

func TestNormalizeMessagesFoldsSystem(t *testing.T) {
	msgs := normalizeMessages([]Message{
		SystemMessage("global directive"),
		UserMessage("hello"),
		SystemMessage("node directive"),
		AssistantMessage("hi there"),
	})

	assert.Len(t, msgs, 3)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "global directive\n\nnode directive", msgs[0].Content)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "assistant", msgs[2].Role)
}

func TestNormalizeMessagesNoSystem(t *testing.T) {
	msgs := normalizeMessages([]Message{UserMessage("hello")})
	assert.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].Role)
}

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		model    string
		in, out  int
		expected float64
	}{
		{"deepseek-chat", 1_000_000, 1_000_000, 0.42},
		{"gemini-1.5-flash", 2_000_000, 0, 0.15},
		{"gemini-1.5-pro", 0, 1_000_000, 10.50},
		{"unknown-model", 1_000_000, 1_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateCost(tt.model, tt.in, tt.out), 1e-9)
		})
	}
}

func TestBaseURLFor(t *testing.T) {
	assert.Contains(t, baseURLFor(ProviderDeepSeek), "deepseek")
	assert.Contains(t, baseURLFor(ProviderGemini), "googleapis")
	assert.Contains(t, baseURLFor(ProviderOpenRouter), "openrouter")
	assert.Empty(t, baseURLFor(ProviderOpenAI))
}

func TestAPIConfigFor(t *testing.T) {
	t.Run("timeout lands on a concrete http client", func(t *testing.T) {
		apiCfg := apiConfigFor(Config{
			Provider: ProviderDeepSeek,
			APIKey:   "sk-test",
			Timeout:  30 * time.Second,
		})

		hc, ok := apiCfg.HTTPClient.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 30*time.Second, hc.Timeout)
		assert.Contains(t, apiCfg.BaseURL, "deepseek")
	})

	t.Run("explicit base url wins over the provider default", func(t *testing.T) {
		apiCfg := apiConfigFor(Config{
			Provider: ProviderOpenRouter,
			BaseURL:  "http://localhost:8080/v1",
		})
		assert.Equal(t, "http://localhost:8080/v1", apiCfg.BaseURL)
	})
}

func TestFailedLLMResult(t *testing.T) {
	r := models.FailedLLMResult("deepseek-chat", "boom")
	assert.False(t, r.Success)
	assert.Equal(t, "boom", r.ErrorMessage)
	assert.Equal(t, "deepseek-chat", r.ModelName)
	assert.Zero(t, r.TotalTokens)
}
