// Package flow loads conversational flow definitions from JSON and
// converts between the authoring canvas format and the engine format.
package flow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/easypath-ai/easypath/pkg/models"
)

// Parse decodes an engine-format flow from JSON. Unknown fields are
// rejected so stale authoring exports fail loudly instead of silently
// dropping configuration.
func Parse(data []byte) (*models.Flow, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f models.Flow
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode flow: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flow: %w", err)
	}
	return &f, nil
}

// LoadFile reads and parses an engine-format flow from disk.
func LoadFile(path string) (*models.Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow file: %w", err)
	}
	return Parse(data)
}

// EnsureEngineFormat accepts a raw flow document in either format and
// returns the engine-format flow, converting from canvas if needed.
func EnsureEngineFormat(data []byte) (*models.Flow, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode flow document: %w", err)
	}

	switch {
	case isEngineFormat(probe):
		return Parse(data)
	case isCanvasFormat(probe):
		return ConvertCanvasToEngine(data)
	default:
		return nil, fmt.Errorf("unknown flow format: missing required fields")
	}
}

func isEngineFormat(m map[string]json.RawMessage) bool {
	_, hasNodes := m["nodes"]
	_, hasConns := m["connections"]
	_, hasFirst := m["first_node_id"]
	return hasNodes && hasConns && hasFirst
}

func isCanvasFormat(m map[string]json.RawMessage) bool {
	_, hasNodes := m["nodes"]
	_, hasEdges := m["edges"]
	_, hasGlobal := m["globalConfig"]
	return hasNodes && hasEdges && hasGlobal
}
