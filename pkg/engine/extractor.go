package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
)

const (
	maxUserMessageLen    = 10000
	maxVariableValueLen  = 1000
	extractionRetries    = 2
	extractionTemp       = 0.1
	markerNotFound       = "NOT_FOUND"
	markerNotProvided    = "NOT_PROVIDED"
)

var suspiciousPatterns = []string{
	"ignore previous",
	"ignore all previous",
	"disregard the above",
	"system prompt",
}

// ExtractVariables pulls the node's configured variables out of the most
// recent user message. Returns the validated values plus the LLM result
// of the attempt that produced them (a zeroed "none" result when no call
// was made).
func ExtractVariables(ctx context.Context, client llm.Client, node *models.Node, session *models.ChatSession) (map[string]any, models.LLMResult) {
	noCall := models.LLMResult{ModelName: "none"}

	if len(node.ExtractVars) == 0 || len(session.History) == 0 {
		return map[string]any{}, noCall
	}

	userMessage := session.LastUserMessage()
	if strings.TrimSpace(userMessage) == "" {
		return map[string]any{}, noCall
	}
	if len(userMessage) > maxUserMessageLen {
		slog.Warn("User message too long for extraction, skipping",
			"session_id", session.SessionID, "length", len(userMessage))
		return map[string]any{}, noCall
	}
	logSuspiciousInput(session.SessionID, userMessage)

	prompt := buildExtractionPrompt(node.ExtractVars, userMessage, session)
	messages := []llm.Message{llm.SystemMessage(prompt)}

	var result models.LLMResult
	for attempt := 0; attempt <= extractionRetries; attempt++ {
		result = client.Chat(ctx, messages, extractionTemp)
		if !result.Success || strings.TrimSpace(result.Response) == "" {
			slog.Warn("Variable extraction call failed",
				"session_id", session.SessionID, "attempt", attempt+1,
				"error", result.ErrorMessage)
			continue
		}

		extracted, err := parseExtractionResponse(result.Response, node.ExtractVars)
		if err != nil {
			slog.Warn("Failed to parse extraction response",
				"session_id", session.SessionID, "attempt", attempt+1, "error", err)
			continue
		}

		slog.Info("Variables extracted",
			"session_id", session.SessionID, "names", mapKeys(extracted))
		return extracted, result
	}

	return map[string]any{}, result
}

// ShouldContinueExtraction reports whether any required variable is still
// missing from the session's accumulated values.
func ShouldContinueExtraction(node *models.Node, accumulated map[string]any) bool {
	for _, v := range node.ExtractVars {
		if v.Required {
			if _, ok := accumulated[v.Name]; !ok {
				return true
			}
		}
	}
	return false
}

// MissingRequiredVariables lists the declarations of required variables
// absent from the accumulated values, in declaration order.
func MissingRequiredVariables(node *models.Node, accumulated map[string]any) []models.VariableExtraction {
	var missing []models.VariableExtraction
	for _, v := range node.ExtractVars {
		if v.Required {
			if _, ok := accumulated[v.Name]; !ok {
				missing = append(missing, v)
			}
		}
	}
	return missing
}

func logSuspiciousInput(sessionID, message string) {
	lowered := strings.ToLower(message)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lowered, pattern) {
			slog.Warn("Suspicious pattern in user message",
				"session_id", sessionID, "pattern", pattern)
			return
		}
	}
}

func buildExtractionPrompt(vars []models.VariableExtraction, userMessage string, session *models.ChatSession) string {
	var b strings.Builder

	escaped := strings.ReplaceAll(userMessage, `"`, `\"`)
	fmt.Fprintf(&b, "You are a precise information extractor. Your task is to extract specific information from the user's message.\n\n"+
		"USER MESSAGE:\n\"%s\"\n\nVARIABLES TO EXTRACT:\n", escaped)

	for _, v := range vars {
		requiredText := "OPTIONAL"
		if v.Required {
			requiredText = "REQUIRED"
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", v.Name, requiredText, v.Description)
	}

	if len(session.ExtractedVariables) > 0 {
		b.WriteString("\nEXTRACTED VARIABLES:\n")
		for _, name := range sortedKeys(session.ExtractedVariables) {
			fmt.Fprintf(&b, "- %s: %v\n", name, session.ExtractedVariables[name])
		}
	}

	b.WriteString(`
INSTRUCTIONS:
1. Extract only the requested information from the user's message
2. If an information is not present or clear, do not invent it
3. For required variables not found, use "NOT_FOUND"
4. For optional variables not found, use "NOT_PROVIDED"
5. Return only a valid JSON in the format:

{
  "variable_name": "extracted_value",
  "another_variable": "another_value"
}

RESPONSE (only JSON):`)

	return b.String()
}

// parseExtractionResponse isolates the JSON object in the model output
// and validates each configured variable.
func parseExtractionResponse(response string, vars []models.VariableExtraction) (map[string]any, error) {
	cleaned := stripCodeFences(strings.TrimSpace(response))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in extraction response")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in extraction response: %w", err)
	}

	extracted := make(map[string]any)
	for _, v := range vars {
		rawValue, ok := raw[v.Name]
		if !ok || rawValue == nil {
			continue
		}
		value := strings.TrimSpace(fmt.Sprintf("%v", rawValue))
		if value == "" || value == markerNotFound || value == markerNotProvided {
			if v.Required && value == markerNotFound {
				slog.Warn("Required variable not found in user message", "variable", v.Name)
			}
			continue
		}
		if err := validateVariable(v, value); err != nil {
			slog.Warn("Extracted value failed validation",
				"variable", v.Name, "error", err)
			continue
		}
		extracted[v.Name] = value
	}

	return extracted, nil
}

func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// validateVariable applies type-specific checks keyed on the declared
// var_type, falling back to well-known variable names.
func validateVariable(v models.VariableExtraction, value string) error {
	if len(value) > maxVariableValueLen {
		return fmt.Errorf("value exceeds %d characters", maxVariableValueLen)
	}

	kind := strings.ToLower(v.VarType)
	if kind == "" || kind == "string" {
		kind = strings.ToLower(v.Name)
	}

	switch kind {
	case "email":
		if !strings.Contains(value, "@") || !strings.Contains(value, ".") {
			return fmt.Errorf("%q is not a plausible email", value)
		}
	case "phone", "telefone":
		digits := 0
		for _, r := range value {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < 8 {
			return fmt.Errorf("%q has fewer than 8 digits", value)
		}
	case "age", "idade":
		age, err := strconv.Atoi(value)
		if err != nil || age < 0 || age > 150 {
			return fmt.Errorf("%q is not a valid age", value)
		}
	}
	return nil
}

func mapKeys(m map[string]any) []string {
	return sortedKeys(m)
}
