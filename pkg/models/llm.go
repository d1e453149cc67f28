package models

// LLMResult is the uniform outcome of one LLM call. Failures never
// surface as errors across the client contract; they arrive here with
// Success=false and a descriptive message.
type LLMResult struct {
	Success          bool    `json:"success"`
	Response         string  `json:"response,omitempty"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	TimingMS         float64 `json:"timing_ms"`
	ModelName        string  `json:"model_name"`
	InputTokens      int     `json:"input_tokens"`
	OutputTokens     int     `json:"output_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

// FailedLLMResult builds a zeroed failure result for the given model.
func FailedLLMResult(model, message string) LLMResult {
	return LLMResult{
		Success:      false,
		ErrorMessage: message,
		ModelName:    model,
	}
}
