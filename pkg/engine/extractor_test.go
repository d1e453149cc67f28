package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/models"
)

func extractionNode() *models.Node {
	return &models.Node{
		ID:       "collect",
		NodeType: models.NodeTypeNormal,
		ExtractVars: []models.VariableExtraction{
			{Name: "user_name", Description: "the user's full name", Required: true},
			{Name: "user_email", Description: "the user's email address", Required: true, VarType: "email"},
			{Name: "company", Description: "company the user works for"},
		},
	}
}

func TestParseExtractionResponse(t *testing.T) {
	vars := extractionNode().ExtractVars

	extracted, err := parseExtractionResponse(
		`{"user_name": "John Doe", "user_email": "NOT_FOUND", "company": "NOT_PROVIDED"}`, vars)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"user_name": "John Doe"}, extracted)

	// markdown fences and surrounding prose are tolerated
	extracted, err = parseExtractionResponse(
		"Here you go:\n```json\n{\"user_name\": \"Maria\"}\n```", vars)
	require.NoError(t, err)
	assert.Equal(t, "Maria", extracted["user_name"])

	_, err = parseExtractionResponse("no json here", vars)
	assert.Error(t, err)

	_, err = parseExtractionResponse(`{"user_name": `, vars)
	assert.Error(t, err)
}

func TestValidateVariable(t *testing.T) {
	email := models.VariableExtraction{Name: "user_email", VarType: "email"}
	assert.NoError(t, validateVariable(email, "john@example.com"))
	assert.Error(t, validateVariable(email, "not-an-email"))

	// name-based fallback when var_type is unset
	phone := models.VariableExtraction{Name: "telefone"}
	assert.NoError(t, validateVariable(phone, "+55 (11) 91234-5678"))
	assert.Error(t, validateVariable(phone, "1234"))

	age := models.VariableExtraction{Name: "idade"}
	assert.NoError(t, validateVariable(age, "30"))
	assert.Error(t, validateVariable(age, "200"))
	assert.Error(t, validateVariable(age, "thirty"))

	free := models.VariableExtraction{Name: "notes"}
	assert.Error(t, validateVariable(free, string(make([]byte, 1001))))
}

func TestExtractVariablesRetries(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		models.FailedLLMResult("mock-model", "boom"),
		okResult("not json at all"),
		okResult(`{"user_name": "John"}`),
	}}

	sess := models.NewChatSession("s1", "collect")
	sess.AddMessage(models.RoleUser, "My name is John")

	extracted, result := ExtractVariables(context.Background(), client, extractionNode(), sess)
	assert.Equal(t, "John", extracted["user_name"])
	assert.True(t, result.Success)
	assert.Len(t, client.calls, 3)
	assert.InDelta(t, 0.1, client.calls[0].temperature, 0.001)
}

func TestExtractVariablesSkipsWithoutUserMessage(t *testing.T) {
	client := &scriptedLLM{}
	sess := models.NewChatSession("s1", "collect")

	extracted, result := ExtractVariables(context.Background(), client, extractionNode(), sess)
	assert.Empty(t, extracted)
	assert.Equal(t, "none", result.ModelName)
	assert.Empty(t, client.calls)
}

func TestShouldContinueExtraction(t *testing.T) {
	node := extractionNode()

	assert.True(t, ShouldContinueExtraction(node, map[string]any{"user_name": "John"}))
	assert.False(t, ShouldContinueExtraction(node, map[string]any{
		"user_name": "John", "user_email": "john@example.com",
	}))

	missing := MissingRequiredVariables(node, map[string]any{"user_name": "John"})
	require.Len(t, missing, 1)
	assert.Equal(t, "user_email", missing[0].Name)
}
