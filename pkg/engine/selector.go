package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
)

// pathwayCandidate is one option offered to the selection LLM: either a
// real connection out of the current node or a virtual edge to a global
// node.
type pathwayCandidate struct {
	Label        string
	Description  string
	Target       string
	ConnectionID string
}

// SelectionResult describes one pathway selection, confident or not.
type SelectionResult struct {
	NextNodeID        string
	ChosenLabel       string
	ConnectionID      string
	ConfidenceScore   int
	LowConfidence     bool
	AvailablePathways []string
	LLMResult         models.LLMResult
}

// ChooseNextNode asks the LLM which outgoing pathway best matches the
// conversation and resolves the answer by fuzzy label match. A failed
// call or an empty candidate set keeps the session on the current node.
func ChooseNextNode(ctx context.Context, client llm.Client, flow *models.Flow, session *models.ChatSession, currentNodeID string) SelectionResult {
	candidates := pathwayCandidates(flow, currentNodeID)
	labels := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
	}

	if len(candidates) == 0 {
		slog.Info("No outgoing pathways, staying on node",
			"session_id", session.SessionID, "node_id", currentNodeID)
		return SelectionResult{
			NextNodeID: currentNodeID,
			LLMResult:  models.LLMResult{ModelName: "none"},
		}
	}

	prompt := buildSelectionPrompt(candidates)
	messages := append(historyMessages(session), llm.SystemMessage(prompt))
	result := client.Chat(ctx, messages, 0)

	if !result.Success || strings.TrimSpace(result.Response) == "" {
		slog.Warn("Pathway selection call failed, staying on node",
			"session_id", session.SessionID, "node_id", currentNodeID,
			"error", result.ErrorMessage)
		return SelectionResult{
			NextNodeID:        currentNodeID,
			AvailablePathways: labels,
			LLMResult:         result,
		}
	}

	idx, score := bestMatch(result.Response, labels)
	chosen := candidates[idx]
	lowConfidence := score < matchThreshold
	if lowConfidence {
		// Advancing anyway beats looping forever when the node
		// auto-advances back into selection.
		slog.Warn("Low-confidence pathway match, advancing to best candidate",
			"session_id", session.SessionID, "node_id", currentNodeID,
			"chosen", chosen.Label, "score", score, "response", result.Response)
	}

	return SelectionResult{
		NextNodeID:        chosen.Target,
		ChosenLabel:       chosen.Label,
		ConnectionID:      chosen.ConnectionID,
		ConfidenceScore:   score,
		LowConfidence:     lowConfidence,
		AvailablePathways: labels,
		LLMResult:         result,
	}
}

// pathwayCandidates collects the real connections out of the node plus a
// virtual connection per global node, labelled with the target node id.
// A node that overrides global pathways offers only its own edges.
func pathwayCandidates(flow *models.Flow, currentNodeID string) []pathwayCandidate {
	var candidates []pathwayCandidate
	for _, c := range flow.ConnectionsFrom(currentNodeID) {
		candidates = append(candidates, pathwayCandidate{
			Label:        c.Label,
			Description:  c.Description,
			Target:       c.Target,
			ConnectionID: c.ID,
		})
	}

	current := flow.NodeByID(currentNodeID)
	if current != nil && current.OverridesGlobalPathway {
		return candidates
	}

	for _, n := range flow.GlobalNodes() {
		if n.ID == currentNodeID {
			continue
		}
		candidates = append(candidates, pathwayCandidate{
			Label:       n.ID,
			Description: n.NodeDescription,
			Target:      n.ID,
		})
	}
	return candidates
}

func buildSelectionPrompt(candidates []pathwayCandidate) string {
	var options strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&options, "\n%d) - Nome: %s\nDescrição: %s", i+1, c.Label, c.Description)
	}

	return "Você deve escolher o melhor caminho a ser tomado nesse fluxo de conversa\n" +
		"Para isso, analise o histórico da conversa, especialmente a última mensagem, e as opções de caminho a serem tomadas a seguir\n" +
		"Ao escolher o melhor caminho, retorne apenas o nome desse caminho para sinalizar sua escolha. Não retorne nenhum texto além do nome do caminho.\n\n" +
		"Opções de caminho:" + options.String()
}
