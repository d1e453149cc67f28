package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
)

// buildGenerationPrompt composes the system directive for response
// generation: the flow-wide persona sections, a separator, then the
// current node's sections. All text fields go through placeholder
// substitution against the session's extracted variables.
func buildGenerationPrompt(flow *models.Flow, node *models.Node, variables map[string]any) string {
	sub := func(s string) string { return SubstituteVariables(s, variables) }

	globalPrompt := fmt.Sprintf(
		"Objetivo Geral da conversa: %s\n"+
			"Tom/Abordagem da conversa: %s\n"+
			"Linguajar da conversa: %s\n"+
			"Comportamento do agente virtual: %s\n"+
			"Valores Globais: %s",
		sub(flow.GlobalObjective),
		sub(flow.GlobalTone),
		sub(flow.GlobalLanguage),
		sub(flow.GlobalBehaviour),
		sub(flow.GlobalValues),
	)

	nodePrompt := fmt.Sprintf(
		"\nContexto da mensagem atual: %s\n"+
			"Objetivo da mensagem atual: %s\n"+
			"Observações da mensagem atual: %s\n"+
			"Exemplos da mensagem atual: %s",
		sub(node.Prompt.Context),
		sub(node.Prompt.Objective),
		sub(node.Prompt.Notes),
		sub(node.Prompt.Examples),
	)

	var b strings.Builder
	b.WriteString(globalPrompt)
	b.WriteString("\n-------------------------------\n")
	b.WriteString(nodePrompt)

	for _, name := range sortedKeys(node.Prompt.CustomFields) {
		fmt.Fprintf(&b, "\n%s: %s", name, sub(node.Prompt.CustomFields[name]))
	}

	if block := formatVariablesBlock(variables); block != "" {
		b.WriteString(block)
	}

	return b.String()
}

// buildReinforcementPrompt is the short trailing system message that
// re-anchors the model on the node's objective after a long history.
func buildReinforcementPrompt(node *models.Node, variables map[string]any) string {
	objective := strings.TrimSpace(SubstituteVariables(node.Prompt.Objective, variables))
	if objective == "" {
		return ""
	}
	return fmt.Sprintf("Lembre-se do objetivo da mensagem atual: %s", objective)
}

// formatVariablesBlock renders the accumulated extracted variables in a
// readable form for inclusion in prompts. Empty when nothing has been
// extracted yet.
func formatVariablesBlock(variables map[string]any) string {
	if len(variables) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n=== USER INFORMATION ===\n")
	for _, name := range sortedKeys(variables) {
		readable := strings.ReplaceAll(name, "_", " ")
		readable = strings.TrimPrefix(readable, "user ")
		fmt.Fprintf(&b, "%s: %v\n", titleWords(readable), variables[name])
	}
	b.WriteString("================================\n")
	return b.String()
}

// sortedKeys gives prompts a stable field order across turns.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// historyMessages converts the session history to LLM chat messages.
func historyMessages(session *models.ChatSession) []llm.Message {
	out := make([]llm.Message, 0, len(session.History))
	for _, msg := range session.History {
		if msg.Role == models.RoleAssistant {
			out = append(out, llm.AssistantMessage(msg.Content))
			continue
		}
		out = append(out, llm.UserMessage(msg.Content))
	}
	return out
}
