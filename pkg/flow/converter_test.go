package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/models"
)

const canvasFlowJSON = `{
	"nodes": [
		{"id": "n1", "type": "start", "position": {"x": 0, "y": 0},
		 "data": {"name": "Start", "isStart": true, "prompt": {"context": "", "objective": "Greet the user", "notes": "", "examples": "", "custom_fields": {}}}},
		{"id": "n2", "type": "normal",
		 "data": {"name": "Collect", "nodeDescription": "collects contact data",
		          "prompt": {"context": "ctx", "objective": "Ask for email", "notes": "", "examples": "", "custom_fields": {}},
		          "extractVars": [{"name": "user_email", "description": "email address", "required": true, "varType": "email"}],
		          "modelOptions": {"temperature": 0.7, "skipUserResponse": false},
		          "loopEnabled": true, "condition": "Continue until a valid email is given"}},
		{"id": "n3", "type": "end", "data": {"name": "End", "prompt": {"context": "", "objective": "", "notes": "", "examples": "", "custom_fields": {}}}}
	],
	"edges": [
		{"id": "e1", "label": "collect", "source": "n1", "target": "n2", "data": {"description": "user wants to sign up", "else_option": false}},
		{"id": "e2", "label": "finish", "source": "n2", "target": "n3", "data": {"description": "all data collected", "else_option": true}}
	],
	"globalConfig": {
		"roleAndObjective": "You are a signup assistant",
		"toneAndStyle": "friendly",
		"languageAndFormatRules": "pt-BR",
		"behaviorAndFallbacks": "",
		"placeholdersAndVariables": ""
	}
}`

func TestConvertCanvasToEngine(t *testing.T) {
	f, err := ConvertCanvasToEngine([]byte(canvasFlowJSON))
	require.NoError(t, err)

	assert.Equal(t, "n1", f.FirstNodeID)
	require.Len(t, f.Nodes, 3)
	require.Len(t, f.Connections, 2)

	start := f.NodeByID("n1")
	require.NotNil(t, start)
	assert.True(t, start.IsStart)
	assert.False(t, start.UseLLM)
	assert.Equal(t, defaultCanvasTemperature, start.Temperature)

	collect := f.NodeByID("n2")
	require.NotNil(t, collect)
	assert.True(t, collect.UseLLM)
	assert.Equal(t, float32(0.7), collect.Temperature)
	assert.True(t, collect.LoopEnabled)
	assert.Equal(t, "Continue until a valid email is given", collect.LoopCondition)
	require.Len(t, collect.ExtractVars, 1)
	assert.Equal(t, models.VariableExtraction{
		Name:        "user_email",
		Description: "email address",
		Required:    true,
		VarType:     "email",
	}, collect.ExtractVars[0])

	end := f.NodeByID("n3")
	require.NotNil(t, end)
	assert.True(t, end.IsEnd)
	assert.False(t, end.UseLLM)

	assert.Equal(t, "You are a signup assistant", f.GlobalObjective)
	assert.Equal(t, "friendly", f.GlobalTone)
	assert.Equal(t, "pt-BR", f.GlobalLanguage)

	edge := f.Connections[1]
	assert.Equal(t, "finish", edge.Label)
	assert.True(t, edge.ElseOption)
	assert.Equal(t, "all data collected", edge.Description)
}

func TestEnsureEngineFormatConvertsCanvas(t *testing.T) {
	f, err := EnsureEngineFormat([]byte(canvasFlowJSON))
	require.NoError(t, err)
	assert.Equal(t, "n1", f.FirstNodeID)
	assert.Len(t, f.Connections, 2)
}

func TestConvertCanvasFirstNodeFallback(t *testing.T) {
	// no node flagged isStart: the first listed node wins
	f, err := ConvertCanvasToEngine([]byte(`{
		"nodes": [{"id": "a", "type": "normal", "data": {"name": "A", "prompt": {"context":"","objective":"","notes":"","examples":"","custom_fields":{}}}}],
		"edges": [],
		"globalConfig": {}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "a", f.FirstNodeID)
}
