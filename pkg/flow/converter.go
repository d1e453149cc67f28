package flow

import (
	"encoding/json"
	"fmt"

	"github.com/easypath-ai/easypath/pkg/models"
)

// Canvas format is what the authoring frontend persists: React Flow
// nodes/edges plus a globalConfig block. The engine never executes it
// directly; it is converted here.

type canvasFlow struct {
	Nodes        []canvasNode       `json:"nodes"`
	Edges        []canvasEdge       `json:"edges"`
	GlobalConfig canvasGlobalConfig `json:"globalConfig"`
}

type canvasNode struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Data canvasNodeData `json:"data"`
}

type canvasNodeData struct {
	Name                 string             `json:"name"`
	IsStart              bool               `json:"isStart"`
	IsGlobal             bool               `json:"isGlobal"`
	NodeDescription      string             `json:"nodeDescription"`
	AutoReturnToPrevious bool               `json:"autoReturnToPrevious"`
	Prompt               models.NodePrompt  `json:"prompt"`
	ExtractVars          []canvasExtractVar `json:"extractVars"`
	ModelOptions         canvasModelOptions `json:"modelOptions"`
	LoopEnabled          bool               `json:"loopEnabled"`
	Condition            string             `json:"condition"`
}

type canvasExtractVar struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	VarType     string `json:"varType"`
}

type canvasModelOptions struct {
	Temperature      *float32 `json:"temperature"`
	SkipUserResponse bool     `json:"skipUserResponse"`
}

type canvasEdge struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Source string `json:"source"`
	Target string `json:"target"`
	Data   struct {
		Description string `json:"description"`
		ElseOption  bool   `json:"else_option"`
	} `json:"data"`
}

type canvasGlobalConfig struct {
	RoleAndObjective         string `json:"roleAndObjective"`
	ToneAndStyle             string `json:"toneAndStyle"`
	LanguageAndFormatRules   string `json:"languageAndFormatRules"`
	BehaviorAndFallbacks     string `json:"behaviorAndFallbacks"`
	PlaceholdersAndVariables string `json:"placeholdersAndVariables"`
}

// defaultCanvasTemperature applies when the authoring UI left the model
// options untouched.
const defaultCanvasTemperature float32 = 0.2

// ConvertCanvasToEngine translates a canvas-format document into an
// engine-format flow.
func ConvertCanvasToEngine(data []byte) (*models.Flow, error) {
	var cf canvasFlow
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to decode canvas flow: %w", err)
	}
	if len(cf.Nodes) == 0 {
		return nil, fmt.Errorf("canvas flow has no nodes")
	}

	firstNodeID := cf.Nodes[0].ID
	for _, n := range cf.Nodes {
		if n.Data.IsStart {
			firstNodeID = n.ID
			break
		}
	}

	nodes := make([]models.Node, 0, len(cf.Nodes))
	for _, cn := range cf.Nodes {
		nodeType := cn.Type
		if nodeType == "" {
			nodeType = models.NodeTypeNormal
		}

		temperature := defaultCanvasTemperature
		if cn.Data.ModelOptions.Temperature != nil {
			temperature = *cn.Data.ModelOptions.Temperature
		}

		extractVars := make([]models.VariableExtraction, 0, len(cn.Data.ExtractVars))
		for _, v := range cn.Data.ExtractVars {
			varType := v.VarType
			if varType == "" {
				varType = "string"
			}
			extractVars = append(extractVars, models.VariableExtraction{
				Name:        v.Name,
				Description: v.Description,
				Required:    v.Required,
				VarType:     varType,
			})
		}

		prompt := cn.Data.Prompt
		if prompt.CustomFields == nil {
			prompt.CustomFields = map[string]string{}
		}

		nodes = append(nodes, models.Node{
			ID:                   cn.ID,
			NodeType:             nodeType,
			Prompt:               prompt,
			IsStart:              cn.Data.IsStart,
			IsEnd:                nodeType == models.NodeTypeEnd || cn.Data.Name == "End",
			UseLLM:               nodeType != models.NodeTypeStart && nodeType != models.NodeTypeEnd,
			IsGlobal:             cn.Data.IsGlobal,
			NodeDescription:      cn.Data.NodeDescription,
			AutoReturnToPrevious: cn.Data.AutoReturnToPrevious,
			ExtractVars:          extractVars,
			Temperature:          temperature,
			SkipUserResponse:     cn.Data.ModelOptions.SkipUserResponse,
			LoopEnabled:          cn.Data.LoopEnabled,
			LoopCondition:        cn.Data.Condition,
		})
	}

	connections := make([]models.Connection, 0, len(cf.Edges))
	for _, e := range cf.Edges {
		connections = append(connections, models.Connection{
			ID:          e.ID,
			Label:       e.Label,
			Description: e.Data.Description,
			ElseOption:  e.Data.ElseOption,
			Source:      e.Source,
			Target:      e.Target,
		})
	}

	f := &models.Flow{
		FirstNodeID:     firstNodeID,
		Nodes:           nodes,
		Connections:     connections,
		GlobalObjective: cf.GlobalConfig.RoleAndObjective,
		GlobalTone:      cf.GlobalConfig.ToneAndStyle,
		GlobalLanguage:  cf.GlobalConfig.LanguageAndFormatRules,
		GlobalBehaviour: cf.GlobalConfig.BehaviorAndFallbacks,
		GlobalValues:    cf.GlobalConfig.PlaceholdersAndVariables,
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("converted flow is invalid: %w", err)
	}
	return f, nil
}
