package flow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const engineFlowJSON = `{
	"first_node_id": "start",
	"nodes": [
		{"id": "start", "node_type": "start", "prompt": {"context": "", "objective": "Greet", "notes": "", "examples": "", "custom_fields": {}},
		 "is_start": true, "is_end": false, "use_llm": false, "is_global": false, "node_description": "",
		 "auto_return_to_previous": false, "extract_vars": [], "temperature": 0.2, "skip_user_response": false,
		 "loop_enabled": false, "loop_condition": "", "overrides_global_pathway": false},
		{"id": "end", "node_type": "end", "prompt": {"context": "", "objective": "Say goodbye", "notes": "", "examples": "", "custom_fields": {}},
		 "is_start": false, "is_end": true, "use_llm": false, "is_global": false, "node_description": "",
		 "auto_return_to_previous": false, "extract_vars": [], "temperature": 0.2, "skip_user_response": false,
		 "loop_enabled": false, "loop_condition": "", "overrides_global_pathway": false}
	],
	"connections": [
		{"id": "c1", "label": "to-end", "description": "go to end", "else_option": false, "source": "start", "target": "end"}
	],
	"global_objective": "Help the user",
	"global_tone": "",
	"global_language": "",
	"global_behaviour": "",
	"global_values": ""
}`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(engineFlowJSON))
	require.NoError(t, err)

	assert.Equal(t, "start", f.FirstNodeID)
	assert.Len(t, f.Nodes, 2)
	assert.Len(t, f.Connections, 1)
	assert.Equal(t, "Help the user", f.GlobalObjective)

	node := f.NodeByID("start")
	require.NotNil(t, node)
	assert.True(t, node.IsStart)
	assert.Equal(t, "Greet", node.Prompt.Objective)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"first_node_id": "a", "nodes": [], "connections": [], "bogus": 1}`))
	assert.Error(t, err)
}

func TestParseRejectsBrokenGraph(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "missing first node",
			json: `{"first_node_id": "ghost", "nodes": [{"id": "a", "node_type": "start", "prompt": {"context":"","objective":"","notes":"","examples":"","custom_fields":{}}, "is_start": true, "is_end": false, "use_llm": false, "is_global": false, "node_description": "", "auto_return_to_previous": false, "extract_vars": [], "temperature": 0.2, "skip_user_response": false, "loop_enabled": false, "loop_condition": "", "overrides_global_pathway": false}], "connections": [], "global_objective":"", "global_tone":"", "global_language":"", "global_behaviour":"", "global_values":""}`,
		},
		{
			name: "dangling connection target",
			json: `{"first_node_id": "a", "nodes": [{"id": "a", "node_type": "start", "prompt": {"context":"","objective":"","notes":"","examples":"","custom_fields":{}}, "is_start": true, "is_end": false, "use_llm": false, "is_global": false, "node_description": "", "auto_return_to_previous": false, "extract_vars": [], "temperature": 0.2, "skip_user_response": false, "loop_enabled": false, "loop_condition": "", "overrides_global_pathway": false}], "connections": [{"id": "c", "label": "x", "description": "", "else_option": false, "source": "a", "target": "ghost"}], "global_objective":"", "global_tone":"", "global_language":"", "global_behaviour":"", "global_values":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.json")
	require.NoError(t, os.WriteFile(path, []byte(engineFlowJSON), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "start", f.FirstNodeID)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEnsureEngineFormatPassthrough(t *testing.T) {
	f, err := EnsureEngineFormat([]byte(engineFlowJSON))
	require.NoError(t, err)
	assert.Equal(t, "start", f.FirstNodeID)
}

func TestEnsureEngineFormatUnknown(t *testing.T) {
	_, err := EnsureEngineFormat([]byte(`{"foo": "bar"}`))
	assert.ErrorContains(t, err, "unknown flow format")
}
