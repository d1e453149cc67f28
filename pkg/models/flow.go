// Package models defines the core domain types shared across the engine:
// flows, sessions, messages, and LLM call results.
package models

import (
	"fmt"
	"strings"
)

// Node types. A flow always has exactly one start node; end nodes are
// terminal and generate no pathway selection.
const (
	NodeTypeStart  = "start"
	NodeTypeNormal = "normal"
	NodeTypeGlobal = "global"
	NodeTypeEnd    = "end"
)

// Flow is the immutable conversational graph. It is loaded once from JSON
// and shared read-only by every orchestrator turn.
type Flow struct {
	FirstNodeID string       `json:"first_node_id"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`

	GlobalObjective string `json:"global_objective"`
	GlobalTone      string `json:"global_tone"`
	GlobalLanguage  string `json:"global_language"`
	GlobalBehaviour string `json:"global_behaviour"`
	GlobalValues    string `json:"global_values"`
}

// Node is a single conversational step.
type Node struct {
	ID       string     `json:"id"`
	NodeType string     `json:"node_type"`
	Prompt   NodePrompt `json:"prompt"`

	IsStart              bool    `json:"is_start"`
	IsEnd                bool    `json:"is_end"`
	UseLLM               bool    `json:"use_llm"`
	IsGlobal             bool    `json:"is_global"`
	NodeDescription      string  `json:"node_description"`
	AutoReturnToPrevious bool    `json:"auto_return_to_previous"`
	Temperature          float32 `json:"temperature"`
	SkipUserResponse     bool    `json:"skip_user_response"`

	ExtractVars []VariableExtraction `json:"extract_vars"`

	LoopEnabled   bool   `json:"loop_enabled"`
	LoopCondition string `json:"loop_condition"`

	OverridesGlobalPathway bool `json:"overrides_global_pathway"`
}

// NodePrompt holds the per-node prompt sections composed into the
// generation prompt.
type NodePrompt struct {
	Context      string            `json:"context"`
	Objective    string            `json:"objective"`
	Notes        string            `json:"notes"`
	Examples     string            `json:"examples"`
	CustomFields map[string]string `json:"custom_fields"`
}

// VariableExtraction declares one slot the node extracts from user input.
type VariableExtraction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	VarType     string `json:"var_type"`
}

// Connection is a directed labelled edge between two nodes. The label is
// what the pathway selector matches the LLM answer against.
type Connection struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	ElseOption  bool   `json:"else_option"`
	Source      string `json:"source"`
	Target      string `json:"target"`
}

// NodeByID returns the node with the given id, or nil.
func (f *Flow) NodeByID(id string) *Node {
	for i := range f.Nodes {
		if f.Nodes[i].ID == id {
			return &f.Nodes[i]
		}
	}
	return nil
}

// ConnectionsFrom returns every connection whose source is the given node.
func (f *Flow) ConnectionsFrom(nodeID string) []Connection {
	var out []Connection
	for _, c := range f.Connections {
		if c.Source == nodeID {
			out = append(out, c)
		}
	}
	return out
}

// GlobalNodes returns every node reachable from anywhere during pathway
// selection.
func (f *Flow) GlobalNodes() []Node {
	var out []Node
	for _, n := range f.Nodes {
		if n.IsGlobal {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks structural invariants: the first node exists, every
// connection endpoint resolves, sibling labels are distinct after
// case-folding, and temperatures are within range.
func (f *Flow) Validate() error {
	if len(f.Nodes) == 0 {
		return fmt.Errorf("flow has no nodes")
	}
	if f.FirstNodeID == "" {
		return fmt.Errorf("flow has no first_node_id")
	}

	ids := make(map[string]bool, len(f.Nodes))
	for _, n := range f.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node with empty id")
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
		if n.Temperature < 0 || n.Temperature > 2 {
			return fmt.Errorf("node %q: temperature %v out of range [0,2]", n.ID, n.Temperature)
		}
	}
	if !ids[f.FirstNodeID] {
		return fmt.Errorf("first_node_id %q does not resolve to a node", f.FirstNodeID)
	}

	// label uniqueness is scoped per source node
	labels := make(map[string]map[string]bool)
	for _, c := range f.Connections {
		if !ids[c.Source] {
			return fmt.Errorf("connection %q: source %q does not resolve to a node", c.ID, c.Source)
		}
		if !ids[c.Target] {
			return fmt.Errorf("connection %q: target %q does not resolve to a node", c.ID, c.Target)
		}
		folded := strings.ToLower(strings.TrimSpace(c.Label))
		if labels[c.Source] == nil {
			labels[c.Source] = make(map[string]bool)
		}
		if labels[c.Source][folded] {
			return fmt.Errorf("node %q: duplicate connection label %q", c.Source, c.Label)
		}
		labels[c.Source][folded] = true
	}

	return nil
}
