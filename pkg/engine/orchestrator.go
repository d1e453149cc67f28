package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
)

// cannedErrorReply is the user-facing degradation for any internal
// failure during a turn.
const cannedErrorReply = "Desculpe, ocorreu um erro ao processar sua mensagem. Por favor, tente novamente."

// StepTimings aggregates wall-clock and token accounting for one turn.
type StepTimings struct {
	TotalMS              float64 `json:"total_ms"`
	VariableExtractionMS float64 `json:"variable_extraction_llm_ms"`
	PathwaySelectionMS   float64 `json:"pathway_selection_llm_ms"`
	LoopEvaluationMS     float64 `json:"loop_evaluation_llm_ms"`
	ResponseGenerationMS float64 `json:"response_generation_llm_ms"`
	ModelName            string  `json:"model_name"`
	TotalTokens          int     `json:"total_tokens"`
	EstimatedCostUSD     float64 `json:"estimated_cost_usd"`
}

// timingMap flattens the timing fields for the decision_step payload.
func (t StepTimings) timingMap() map[string]float64 {
	return map[string]float64{
		"total_ms":                   t.TotalMS,
		"variable_extraction_llm_ms": t.VariableExtractionMS,
		"pathway_selection_llm_ms":   t.PathwaySelectionMS,
		"loop_evaluation_llm_ms":     t.LoopEvaluationMS,
		"response_generation_llm_ms": t.ResponseGenerationMS,
	}
}

// accumulate folds one LLM result into the turn's token accounting.
func (t *StepTimings) accumulate(result models.LLMResult) {
	t.TotalTokens += result.TotalTokens
	t.EstimatedCostUSD += result.EstimatedCostUSD
	if result.ModelName != "" && result.ModelName != "none" {
		t.ModelName = result.ModelName
	}
}

// Orchestrator runs single conversation turns against a flow. It holds
// no per-session state; the caller owns the session for the duration of
// the turn.
type Orchestrator struct {
	llm       llm.Client
	publisher *events.Publisher
}

// NewOrchestrator creates an orchestrator over the given LLM client and
// event publisher.
func NewOrchestrator(client llm.Client, publisher *events.Publisher) *Orchestrator {
	return &Orchestrator{llm: client, publisher: publisher}
}

// RunStep executes one turn: extraction, loop evaluation, pathway
// selection, and response generation, emitting events along the way.
// The session is mutated in place; persisting it is the caller's job.
func (o *Orchestrator) RunStep(ctx context.Context, flow *models.Flow, session *models.ChatSession, userMessage string) (string, StepTimings) {
	start := time.Now()
	timings := StepTimings{ModelName: "none"}
	sessionID := session.SessionID

	finish := func(reply string) (string, StepTimings) {
		timings.TotalMS = roundMS(time.Since(start))
		return reply, timings
	}

	if strings.TrimSpace(userMessage) == "" || len(userMessage) > maxUserMessageLen || session.CurrentNodeID == "" {
		slog.Warn("Rejecting invalid turn input",
			"session_id", sessionID, "message_len", len(userMessage),
			"current_node_id", session.CurrentNodeID)
		timings.ModelName = "error"
		return finish(cannedErrorReply)
	}

	session.AddMessage(models.RoleUser, userMessage)
	o.publisher.PublishUserMessage(sessionID, events.UserMessagePayload{
		Message:       userMessage,
		CurrentNodeID: session.CurrentNodeID,
	})

	node := flow.NodeByID(session.CurrentNodeID)
	if node == nil {
		o.publishError(sessionID, session.CurrentNodeID, "flow_error",
			fmt.Sprintf("current node %q not found in flow", session.CurrentNodeID))
		timings.ModelName = "error"
		return finish(cannedErrorReply)
	}

	// Variable extraction runs before anything else so that loop and
	// pathway decisions see the freshest values.
	if len(node.ExtractVars) > 0 {
		extracted, result := ExtractVariables(ctx, o.llm, node, session)
		timings.VariableExtractionMS = result.TimingMS
		timings.accumulate(result)

		session.MergeVariables(extracted)
		for _, name := range sortedKeys(extracted) {
			o.publisher.PublishVariableExtracted(sessionID, events.VariableExtractedPayload{
				NodeID:        node.ID,
				VariableName:  name,
				VariableValue: extracted[name],
				AllVariables:  session.ExtractedVariables,
			})
		}

		if ShouldContinueExtraction(node, session.ExtractedVariables) {
			reply := clarificationReply(MissingRequiredVariables(node, session.ExtractedVariables))
			session.AddMessage(models.RoleAssistant, reply)
			o.publisher.PublishAssistantMessage(sessionID, events.AssistantMessagePayload{
				Message: reply,
				NodeID:  node.ID,
			})
			timings.TotalMS = roundMS(time.Since(start))
			o.publishDecisionStep(sessionID, "variable_extraction", node, session, SelectionResult{}, reply, timings)
			return reply, timings
		}
	}

	if node.LoopEnabled && strings.TrimSpace(node.LoopCondition) != "" {
		loop := EvaluateLoop(ctx, o.llm, node, session)
		timings.LoopEvaluationMS = loop.LLMResult.TimingMS
		timings.accumulate(loop.LLMResult)

		if loop.ShouldLoop {
			reply := o.generateResponse(ctx, flow, node, session, &timings)
			session.AddMessage(models.RoleAssistant, reply)
			o.publisher.PublishAssistantMessage(sessionID, events.AssistantMessagePayload{
				Message: reply,
				NodeID:  node.ID,
			})
			timings.TotalMS = roundMS(time.Since(start))
			o.publishDecisionStep(sessionID, "loop", node, session, SelectionResult{}, reply, timings)
			return reply, timings
		}
	}

	previousNodeID := session.CurrentNodeID
	session.PreviousNodeID = previousNodeID

	selection := ChooseNextNode(ctx, o.llm, flow, session, previousNodeID)
	timings.PathwaySelectionMS = selection.LLMResult.TimingMS
	timings.accumulate(selection.LLMResult)

	o.publisher.PublishNodeExited(sessionID, events.NodeExitedPayload{
		NodeID:   node.ID,
		NodeType: node.NodeType,
	})
	o.publisher.PublishPathwaySelected(sessionID, events.PathwaySelectedPayload{
		FromNodeID:        previousNodeID,
		ToNodeID:          selection.NextNodeID,
		ConnectionID:      selection.ConnectionID,
		ConnectionLabel:   selection.ChosenLabel,
		ConfidenceScore:   selection.ConfidenceScore,
		AvailablePathways: selection.AvailablePathways,
		LLMResponse:       selection.LLMResult.Response,
	})

	session.CurrentNodeID = selection.NextNodeID
	newNode := flow.NodeByID(selection.NextNodeID)
	if newNode == nil {
		o.publishError(sessionID, selection.NextNodeID, "flow_error",
			fmt.Sprintf("selected node %q not found in flow", selection.NextNodeID))
		timings.ModelName = "error"
		return finish(cannedErrorReply)
	}
	o.publisher.PublishNodeEntered(sessionID, events.NodeEnteredPayload{
		NodeID:   newNode.ID,
		NodeType: newNode.NodeType,
		NodeName: newNode.NodeDescription,
	})

	reply := o.generateResponse(ctx, flow, newNode, session, &timings)
	session.AddMessage(models.RoleAssistant, reply)
	o.publisher.PublishAssistantMessage(sessionID, events.AssistantMessagePayload{
		Message: reply,
		NodeID:  newNode.ID,
	})
	timings.TotalMS = roundMS(time.Since(start))
	o.publishDecisionStep(sessionID, "message_turn", newNode, session, selection, reply, timings)

	// Transient visit to a global node: emission shows the visit, the
	// persisted position returns to where the user was.
	if newNode.AutoReturnToPrevious && session.PreviousNodeID != "" {
		session.CurrentNodeID = session.PreviousNodeID
	}

	return reply, timings
}

// generateResponse runs the sandwich prompt for a node: system
// directive, full history, then a short objective reinforcement. Any
// failure degrades to the canned reply and marks the turn as errored.
func (o *Orchestrator) generateResponse(ctx context.Context, flow *models.Flow, node *models.Node, session *models.ChatSession, timings *StepTimings) string {
	directive := buildGenerationPrompt(flow, node, session.ExtractedVariables)
	messages := []llm.Message{llm.SystemMessage(directive)}
	messages = append(messages, historyMessages(session)...)
	if reinforcement := buildReinforcementPrompt(node, session.ExtractedVariables); reinforcement != "" {
		messages = append(messages, llm.SystemMessage(reinforcement))
	}

	result := o.llm.Chat(ctx, messages, node.Temperature)
	timings.ResponseGenerationMS = result.TimingMS
	timings.accumulate(result)

	if !result.Success || strings.TrimSpace(result.Response) == "" {
		slog.Error("Response generation failed",
			"session_id", session.SessionID, "node_id", node.ID,
			"error", result.ErrorMessage)
		o.publishError(session.SessionID, node.ID, "llm_error", result.ErrorMessage)
		timings.ModelName = "error"
		return cannedErrorReply
	}

	o.publisher.PublishResponseGenerated(session.SessionID, events.ResponseGeneratedPayload{
		NodeID:       node.ID,
		ResponseText: result.Response,
		TokensUsed:   result.TotalTokens,
	})
	return result.Response
}

// clarificationReply deterministically asks for the still-missing
// required variables, by description.
func clarificationReply(missing []models.VariableExtraction) string {
	var b strings.Builder
	b.WriteString("Para continuar, preciso que você me informe:\n")
	for _, v := range missing {
		desc := v.Description
		if strings.TrimSpace(desc) == "" {
			desc = v.Name
		}
		fmt.Fprintf(&b, "- %s\n", desc)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (o *Orchestrator) publishDecisionStep(sessionID, stepName string, node *models.Node, session *models.ChatSession, selection SelectionResult, reply string, timings StepTimings) {
	variablesStatus := make(map[string]bool)
	for _, v := range node.ExtractVars {
		_, present := session.ExtractedVariables[v.Name]
		variablesStatus[v.Name] = present
	}

	o.publisher.PublishDecisionStep(sessionID, events.DecisionStepPayload{
		StepName:           stepName,
		NodeID:             node.ID,
		NodeName:           node.NodeDescription,
		PreviousNodeID:     session.PreviousNodeID,
		AvailablePathways:  selection.AvailablePathways,
		ChosenPathway:      selection.ChosenLabel,
		PathwayConfidence:  selection.ConfidenceScore,
		LLMReasoning:       selection.LLMResult.Response,
		VariablesExtracted: session.ExtractedVariables,
		VariablesStatus:    variablesStatus,
		AssistantResponse:  reply,
		TimingMS:           timings.TotalMS,
		TokensUsed:         timings.TotalTokens,
		CostUSD:            timings.EstimatedCostUSD,
		ModelName:          timings.ModelName,
		StepTimings:        timings.timingMap(),
	})
}

func (o *Orchestrator) publishError(sessionID, nodeID, errorType, message string) {
	o.publisher.PublishError(sessionID, events.ErrorPayload{
		ErrorMessage: message,
		ErrorType:    errorType,
		NodeID:       nodeID,
	})
}

// roundMS converts a duration to milliseconds with 1-decimal rounding.
func roundMS(d time.Duration) float64 {
	return math.Round(d.Seconds()*10000) / 10
}
