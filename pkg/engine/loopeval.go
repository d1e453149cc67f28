package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
)

const loopContextMessages = 6

// LoopResult carries the loop decision and the LLM call that produced
// it. When the condition is disabled or empty, no call is made and the
// result has ModelName "none".
type LoopResult struct {
	ShouldLoop bool
	Reasoning  string
	LLMResult  models.LLMResult
}

// EvaluateLoop decides whether the session stays on the current node.
// Checked after extraction; the fail-safe on any ambiguity is to
// proceed, never to loop.
func EvaluateLoop(ctx context.Context, client llm.Client, node *models.Node, session *models.ChatSession) LoopResult {
	noCall := LoopResult{LLMResult: models.LLMResult{ModelName: "none"}}

	if !node.LoopEnabled {
		return noCall
	}
	if strings.TrimSpace(node.LoopCondition) == "" {
		slog.Info("Loop enabled but no condition specified, proceeding",
			"session_id", session.SessionID, "node_id", node.ID)
		return noCall
	}

	prompt := buildLoopPrompt(node, session)
	result := client.Chat(ctx, []llm.Message{llm.SystemMessage(prompt)}, extractionTemp)

	if !result.Success {
		slog.Warn("Loop evaluation call failed, proceeding",
			"session_id", session.SessionID, "node_id", node.ID,
			"error", result.ErrorMessage)
		return LoopResult{LLMResult: result}
	}

	shouldLoop := parseLoopResponse(result.Response)
	slog.Info("Loop condition evaluated",
		"session_id", session.SessionID, "node_id", node.ID,
		"should_loop", shouldLoop, "response", truncate(result.Response, 100))

	return LoopResult{
		ShouldLoop: shouldLoop,
		Reasoning:  result.Response,
		LLMResult:  result,
	}
}

func buildLoopPrompt(node *models.Node, session *models.ChatSession) string {
	var history strings.Builder
	for i, msg := range session.RecentMessages(loopContextMessages) {
		if i > 0 {
			history.WriteString("\n")
		}
		fmt.Fprintf(&history, "%s: %s", strings.ToUpper(msg.Role), msg.Content)
	}

	var variables strings.Builder
	if len(session.ExtractedVariables) > 0 {
		variables.WriteString("\nEXTRACTED VARIABLES:\n")
		for _, name := range sortedKeys(session.ExtractedVariables) {
			fmt.Fprintf(&variables, "- %s: %v\n", name, session.ExtractedVariables[name])
		}
	}

	return fmt.Sprintf(`You are evaluating whether a conversation flow should LOOP (stay on current node) or PROCEED (move to next node).

LOOP CONDITION TO EVALUATE:
%s

RECENT CONVERSATION:
%s
%s
INSTRUCTIONS:
1. Carefully read the loop condition
2. Analyze the recent conversation and extracted variables
3. Determine if the condition for looping is STILL TRUE (should keep looping)
4. Answer with ONLY one word: "LOOP" or "PROCEED"

IMPORTANT:
- "LOOP" means the condition is still met and we should stay on this node
- "PROCEED" means the condition is no longer met and we should move forward
- If in doubt, answer "PROCEED" to avoid infinite loops

YOUR ANSWER (one word only):`, node.LoopCondition, history.String(), variables.String())
}

// parseLoopResponse maps the model's answer to a decision. "PROCEED"
// anywhere wins over "LOOP"; anything unclear proceeds.
func parseLoopResponse(response string) bool {
	cleaned := strings.ToUpper(strings.TrimSpace(response))
	if cleaned == "" {
		return false
	}
	if strings.Contains(cleaned, "PROCEED") {
		return false
	}
	return strings.Contains(cleaned, "LOOP")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
