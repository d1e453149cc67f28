package engine

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
)

// scriptedLLM returns queued results in order and records every call.
type scriptedLLM struct {
	mu    sync.Mutex
	queue []models.LLMResult
	calls []llmCall
}

type llmCall struct {
	messages    []llm.Message
	temperature float32
}

func (s *scriptedLLM) Chat(_ context.Context, messages []llm.Message, temperature float32) models.LLMResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, llmCall{messages: messages, temperature: temperature})
	if len(s.queue) == 0 {
		return models.FailedLLMResult("mock-model", "no scripted response")
	}
	result := s.queue[0]
	s.queue = s.queue[1:]
	return result
}

func okResult(response string) models.LLMResult {
	return models.LLMResult{
		Success:          true,
		Response:         response,
		ModelName:        "mock-model",
		TimingMS:         12.5,
		InputTokens:      30,
		OutputTokens:     12,
		TotalTokens:      42,
		EstimatedCostUSD: 0.000021,
	}
}

// eventRecorder captures broadcast events decoded as generic maps.
type eventRecorder struct {
	mu     sync.Mutex
	events []map[string]any
}

func (r *eventRecorder) Broadcast(_ string, event []byte) {
	var decoded map[string]any
	if err := json.Unmarshal(event, &decoded); err != nil {
		return
	}
	r.mu.Lock()
	r.events = append(r.events, decoded)
	r.mu.Unlock()
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e["type"].(string))
	}
	return out
}

func (r *eventRecorder) byType(eventType string) map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e["type"] == eventType {
			return e
		}
	}
	return nil
}

func newTestOrchestrator(client llm.Client) (*Orchestrator, *eventRecorder) {
	recorder := &eventRecorder{}
	return NewOrchestrator(client, events.NewPublisher(recorder)), recorder
}

func happyFlow() *models.Flow {
	return &models.Flow{
		FirstNodeID: "start",
		Nodes: []models.Node{
			{ID: "start", NodeType: models.NodeTypeStart, IsStart: true},
			{ID: "end", NodeType: models.NodeTypeEnd, IsEnd: true,
				Prompt: models.NodePrompt{Objective: "say goodbye"}},
		},
		Connections: []models.Connection{
			{ID: "c1", Label: "to-end", Description: "conversation is over", Source: "start", Target: "end"},
		},
	}
}

func TestRunStepHappyPathAdvance(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("to-end"), // pathway selection
		okResult("ok"),     // response generation
	}}
	orch, recorder := newTestOrchestrator(client)

	sess := models.NewChatSession("s1", "start")
	reply, timings := orch.RunStep(context.Background(), happyFlow(), sess, "hi")

	assert.Equal(t, "ok", reply)
	assert.Equal(t, "end", sess.CurrentNodeID)
	assert.Len(t, sess.History, 2)
	assert.Equal(t, "mock-model", timings.ModelName)
	assert.Equal(t, 84, timings.TotalTokens)
	assert.Greater(t, timings.TotalMS, 0.0)

	assert.Equal(t, []string{
		"user_message", "node_exited", "pathway_selected", "node_entered",
		"response_generated", "assistant_message", "decision_step",
	}, recorder.types())

	selected := recorder.byType("pathway_selected")
	require.NotNil(t, selected)
	assert.Equal(t, "end", selected["to_node_id"])
	assert.Equal(t, float64(100), selected["confidence_score"])
}

func TestRunStepExtractionClarification(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult(`{"user_name": "John", "user_email": "NOT_FOUND"}`),
	}}
	orch, recorder := newTestOrchestrator(client)

	f := &models.Flow{
		FirstNodeID: "collect",
		Nodes:       []models.Node{*extractionNode()},
	}
	sess := models.NewChatSession("s1", "collect")

	reply, _ := orch.RunStep(context.Background(), f, sess, "My name is John")

	assert.Contains(t, reply, "the user's email address")
	assert.NotContains(t, reply, "John")
	assert.Equal(t, "collect", sess.CurrentNodeID)
	assert.Equal(t, map[string]any{"user_name": "John"}, sess.ExtractedVariables)
	assert.Len(t, sess.History, 2)

	extracted := recorder.byType("variable_extracted")
	require.NotNil(t, extracted)
	assert.Equal(t, "user_name", extracted["variable_name"])

	step := recorder.byType("decision_step")
	require.NotNil(t, step)
	assert.Equal(t, "variable_extraction", step["step_name"])
	status := step["variables_status"].(map[string]any)
	assert.Equal(t, true, status["user_name"])
	assert.Equal(t, false, status["user_email"])
}

func TestRunStepExplicitLoop(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("LOOP"),
		okResult("Por favor, envie um número válido."),
	}}
	orch, recorder := newTestOrchestrator(client)

	f := &models.Flow{
		FirstNodeID: "ask-number",
		Nodes: []models.Node{{
			ID:            "ask-number",
			NodeType:      models.NodeTypeNormal,
			LoopEnabled:   true,
			LoopCondition: "Continue until user provides a valid integer",
			Prompt:        models.NodePrompt{Objective: "collect an integer"},
		}},
	}
	sess := models.NewChatSession("s1", "ask-number")

	reply, timings := orch.RunStep(context.Background(), f, sess, "abc")

	assert.Equal(t, "Por favor, envie um número válido.", reply)
	assert.Equal(t, "ask-number", sess.CurrentNodeID)
	assert.Greater(t, timings.LoopEvaluationMS, 0.0)

	step := recorder.byType("decision_step")
	require.NotNil(t, step)
	assert.Equal(t, "loop", step["step_name"])
	assert.NotContains(t, recorder.types(), "node_exited")
}

func TestRunStepFuzzyPathwayMetadata(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("alppha"),
		okResult("resposta"),
	}}
	orch, recorder := newTestOrchestrator(client)

	f := &models.Flow{
		FirstNodeID: "fork",
		Nodes: []models.Node{
			{ID: "fork", NodeType: models.NodeTypeNormal},
			{ID: "a", NodeType: models.NodeTypeNormal},
			{ID: "b", NodeType: models.NodeTypeNormal},
		},
		Connections: []models.Connection{
			{ID: "c1", Label: "alpha", Source: "fork", Target: "a"},
			{ID: "c2", Label: "beta", Source: "fork", Target: "b"},
		},
	}
	sess := models.NewChatSession("s1", "fork")

	_, _ = orch.RunStep(context.Background(), f, sess, "first one please")

	assert.Equal(t, "a", sess.CurrentNodeID)
	selected := recorder.byType("pathway_selected")
	require.NotNil(t, selected)
	assert.Equal(t, float64(83), selected["confidence_score"])
	assert.Equal(t, "alppha", selected["llm_response"])
	assert.Equal(t, []any{"alpha", "beta"}, selected["available_pathways"])
}

func TestRunStepZeroScorePathwayAdvances(t *testing.T) {
	// The model ignores the instructions and answers with text sharing
	// no characters with any label. The turn still advances to the best
	// candidate instead of crashing.
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("xyz"),
		okResult("seguindo em frente"),
	}}
	orch, recorder := newTestOrchestrator(client)

	f := &models.Flow{
		FirstNodeID: "fork",
		Nodes: []models.Node{
			{ID: "fork", NodeType: models.NodeTypeNormal},
			{ID: "a", NodeType: models.NodeTypeNormal},
		},
		Connections: []models.Connection{
			{ID: "c1", Label: "abc", Source: "fork", Target: "a"},
		},
	}
	sess := models.NewChatSession("s1", "fork")

	reply, _ := orch.RunStep(context.Background(), f, sess, "oi")
	require.NotEmpty(t, reply)

	assert.Equal(t, "a", sess.CurrentNodeID)
	selected := recorder.byType("pathway_selected")
	require.NotNil(t, selected)
	assert.Equal(t, float64(0), selected["confidence_score"])
	assert.Equal(t, "abc", selected["connection_label"])
	assert.Equal(t, "a", selected["to_node_id"])
}

func TestRunStepAutoReturnGlobal(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("help"),
		okResult("posso ajudar com isso"),
	}}
	orch, recorder := newTestOrchestrator(client)

	f := &models.Flow{
		FirstNodeID: "a",
		Nodes: []models.Node{
			{ID: "a", NodeType: models.NodeTypeNormal},
			{ID: "help", NodeType: models.NodeTypeGlobal, IsGlobal: true,
				NodeDescription:      "answers general questions",
				AutoReturnToPrevious: true},
		},
	}
	sess := models.NewChatSession("s1", "a")

	reply, _ := orch.RunStep(context.Background(), f, sess, "can you help me?")

	assert.Equal(t, "posso ajudar com isso", reply)
	assert.Equal(t, "a", sess.CurrentNodeID)

	exited := recorder.byType("node_exited")
	require.NotNil(t, exited)
	assert.Equal(t, "a", exited["node_id"])
	entered := recorder.byType("node_entered")
	require.NotNil(t, entered)
	assert.Equal(t, "help", entered["node_id"])
	assert.Contains(t, recorder.types(), "assistant_message")
}

func TestRunStepRejectsInvalidInput(t *testing.T) {
	client := &scriptedLLM{}
	orch, recorder := newTestOrchestrator(client)
	sess := models.NewChatSession("s1", "start")

	reply, timings := orch.RunStep(context.Background(), happyFlow(), sess, "   ")

	assert.Equal(t, cannedErrorReply, reply)
	assert.Equal(t, "error", timings.ModelName)
	assert.Empty(t, sess.History)
	assert.Empty(t, recorder.events)
	assert.Empty(t, client.calls)
}

func TestRunStepLLMFailureDegrades(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("to-end"),
		models.FailedLLMResult("mock-model", "upstream 500"),
	}}
	orch, recorder := newTestOrchestrator(client)
	sess := models.NewChatSession("s1", "start")

	reply, timings := orch.RunStep(context.Background(), happyFlow(), sess, "hi")

	assert.Equal(t, cannedErrorReply, reply)
	assert.Equal(t, "error", timings.ModelName)
	assert.Contains(t, recorder.types(), "error")

	// the turn still closes: canned reply lands in history
	assert.Len(t, sess.History, 2)
	assert.Equal(t, cannedErrorReply, sess.History[1].Content)
}

func TestEvaluateLoopSkipsWithoutCondition(t *testing.T) {
	client := &scriptedLLM{}
	sess := models.NewChatSession("s1", "n")

	res := EvaluateLoop(context.Background(), client, &models.Node{ID: "n"}, sess)
	assert.False(t, res.ShouldLoop)
	assert.Equal(t, "none", res.LLMResult.ModelName)

	res = EvaluateLoop(context.Background(), client,
		&models.Node{ID: "n", LoopEnabled: true, LoopCondition: "   "}, sess)
	assert.False(t, res.ShouldLoop)
	assert.Empty(t, client.calls)
}

func TestParseLoopResponse(t *testing.T) {
	assert.True(t, parseLoopResponse("LOOP"))
	assert.True(t, parseLoopResponse("loop"))
	assert.False(t, parseLoopResponse("PROCEED"))
	// PROCEED wins when both appear
	assert.False(t, parseLoopResponse("LOOP or PROCEED, hard to say"))
	assert.False(t, parseLoopResponse("maybe"))
	assert.False(t, parseLoopResponse(""))
}

func TestPathwayCandidatesGlobalOverride(t *testing.T) {
	f := &models.Flow{
		FirstNodeID: "a",
		Nodes: []models.Node{
			{ID: "a", NodeType: models.NodeTypeNormal, OverridesGlobalPathway: true},
			{ID: "b", NodeType: models.NodeTypeNormal},
			{ID: "help", NodeType: models.NodeTypeGlobal, IsGlobal: true},
		},
		Connections: []models.Connection{
			{ID: "c1", Label: "next", Source: "a", Target: "b"},
		},
	}

	got := pathwayCandidates(f, "a")
	require.Len(t, got, 1)
	assert.Equal(t, "next", got[0].Label)

	// without the override the global node joins the candidate set
	f.Nodes[0].OverridesGlobalPathway = false
	got = pathwayCandidates(f, "a")
	require.Len(t, got, 2)
	assert.Equal(t, "help", got[1].Label)

	// a global node never offers itself
	got = pathwayCandidates(f, "help")
	assert.Empty(t, got)
}
