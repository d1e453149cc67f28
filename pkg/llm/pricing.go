package llm

// modelRates holds USD prices per one million tokens (input, output).
// Models missing from the table cost zero so accounting never blocks a
// turn.
var modelRates = map[string]struct{ input, output float64 }{
	"deepseek-chat":    {0.14, 0.28},
	"gemini-1.5-flash": {0.075, 0.30},
	"gemini-1.5-pro":   {3.50, 10.50},
	"gpt-4o-mini":      {0.15, 0.60},
	"gpt-4o":           {2.50, 10.00},
}

// EstimateCost returns the USD cost of a call given its token usage.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	rates, ok := modelRates[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1_000_000*rates.input +
		float64(outputTokens)/1_000_000*rates.output
}
