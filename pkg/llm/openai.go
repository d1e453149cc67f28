package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/easypath-ai/easypath/pkg/models"
)

// Known providers. All speak the OpenAI chat-completions wire format;
// only the base URL and credentials differ.
const (
	ProviderOpenAI     = "openai"
	ProviderDeepSeek   = "deepseek"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config selects the provider, model and credentials for a client.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the provider default (e.g. a local proxy).
	BaseURL string
	Timeout time.Duration
}

// OpenAIClient implements Client over any OpenAI-compatible endpoint.
type OpenAIClient struct {
	api   *openai.Client
	model string
}

// baseURLFor maps a provider name to its OpenAI-compatible endpoint.
func baseURLFor(provider string) string {
	switch provider {
	case ProviderDeepSeek:
		return "https://api.deepseek.com/v1"
	case ProviderGemini:
		return "https://generativelanguage.googleapis.com/v1beta/openai"
	case ProviderOpenRouter:
		return "https://openrouter.ai/api/v1"
	default:
		return "" // go-openai default (api.openai.com)
	}
}

// apiConfigFor builds the go-openai client config: explicit BaseURL wins
// over the provider default, and a positive Timeout swaps in an
// *http.Client carrying it.
func apiConfigFor(cfg Config) openai.ClientConfig {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	} else if url := baseURLFor(cfg.Provider); url != "" {
		apiCfg.BaseURL = url
	}
	if cfg.Timeout > 0 {
		apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return apiCfg
}

// NewOpenAIClient creates a provider client. A missing API key is not an
// error here: every Chat call will return a failed result, matching the
// contract that no error crosses the client boundary.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	apiCfg := apiConfigFor(cfg)

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	slog.Info("LLM client configured",
		"provider", cfg.Provider, "model", model, "base_url", apiCfg.BaseURL)

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(apiCfg),
		model: model,
	}
}

// Chat sends the messages and returns a uniform result. System messages
// are concatenated into a single directive and prepended; timing wraps
// the outbound call only. No retries happen here.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message, temperature float32) models.LLMResult {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    normalizeMessages(messages),
		Temperature: temperature,
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	elapsed := roundMS(time.Since(start))

	if err != nil {
		result := models.FailedLLMResult(c.model, fmt.Sprintf("LLM call failed: %v", err))
		result.TimingMS = elapsed
		return result
	}
	if len(resp.Choices) == 0 {
		result := models.FailedLLMResult(c.model, "LLM returned no choices")
		result.TimingMS = elapsed
		return result
	}

	return models.LLMResult{
		Success:          true,
		Response:         resp.Choices[0].Message.Content,
		TimingMS:         elapsed,
		ModelName:        c.model,
		InputTokens:      resp.Usage.PromptTokens,
		OutputTokens:     resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
		EstimatedCostUSD: EstimateCost(c.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
	}
}

// normalizeMessages folds all system messages into one directive at the
// front and maps the rest in order.
func normalizeMessages(messages []Message) []openai.ChatCompletionMessage {
	var system []string
	rest := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == models.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		role := openai.ChatMessageRoleUser
		if m.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		rest = append(rest, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	if len(system) == 0 {
		return rest
	}
	out := make([]openai.ChatCompletionMessage, 0, len(rest)+1)
	out = append(out, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: strings.Join(system, "\n\n"),
	})
	return append(out, rest...)
}

// roundMS converts a duration to milliseconds with 1-decimal rounding.
func roundMS(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000*10) / 10
}
