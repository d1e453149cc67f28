package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "api_key: {{.LLM_KEY}}",
			env:   map[string]string{"LLM_KEY": "sk-123"},
			want:  "api_key: sk-123",
		},
		{
			name:  "shell style ${VAR} is left alone",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "literal dollar is preserved",
			input: "regex: ^secret.*$",
			want:  "regex: ^secret.*$",
		},
		{
			name:  "multiple variables in one value",
			input: "webhook_base_url: {{.SCHEME}}://{{.PUBLIC_HOST}}",
			env:   map[string]string{"SCHEME": "https", "PUBLIC_HOST": "bots.example.com"},
			want:  "webhook_base_url: https://bots.example.com",
		},
		{
			name:  "missing variable expands to empty",
			input: "redis_url: {{.MISSING_VAR}}",
			want:  "redis_url: ",
		},
		{
			name:  "nested YAML",
			input: "llm:\n  model: {{.LLM_MODEL}}",
			env:   map[string]string{"LLM_MODEL": "gpt-4o-mini"},
			want:  "llm:\n  model: gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

// Malformed template syntax must pass through unchanged so the YAML
// parser can report it (or accept it as a literal).
func TestExpandEnvMalformedTemplatePassthrough(t *testing.T) {
	t.Setenv("LLM_KEY", "should-not-appear")

	inputs := []string{
		"api_key: {{.LLM_KEY",
		"api_key: {{",
		"api_key: }}.LLM_KEY{{",
		"key1: {{.VAR1\nkey2: {{.VAR2}",
	}
	for _, input := range inputs {
		result := ExpandEnv([]byte(input))
		assert.Equal(t, input, string(result))
		assert.NotContains(t, string(result), "should-not-appear")
	}
}

func TestExpandEnvFeedsYAMLParser(t *testing.T) {
	t.Setenv("PUBLIC_HOST", "bots.example.com")

	expanded := ExpandEnv([]byte("webhook_base_url: https://{{.PUBLIC_HOST}}\nport: 9000\n"))

	var decoded map[string]any
	assert.NoError(t, yaml.Unmarshal(expanded, &decoded))
	assert.Equal(t, "https://bots.example.com", decoded["webhook_base_url"])
}
