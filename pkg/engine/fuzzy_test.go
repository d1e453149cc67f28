package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyRatio(t *testing.T) {
	assert.Equal(t, 100, fuzzyRatio("to-end", "to-end"))
	assert.Equal(t, 100, fuzzyRatio("  To-End ", "to-end"))
	assert.Equal(t, 83, fuzzyRatio("alppha", "alpha"))
	assert.Equal(t, 0, fuzzyRatio("abc", "xyz"))
}

func TestBestMatch(t *testing.T) {
	idx, score := bestMatch("alppha", []string{"alpha", "beta"})
	assert.Equal(t, 0, idx)
	assert.Equal(t, 83, score)

	// A response sharing nothing with any label still picks a valid
	// candidate; the zero score marks it low confidence.
	idx, score = bestMatch("xyz", []string{"abc", "def"})
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, score)

	idx, score = bestMatch("anything", nil)
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0, score)
}

func TestSubstituteVariables(t *testing.T) {
	vars := map[string]any{"user_name": "John", "age": 30}

	assert.Equal(t, "Olá John, você tem 30 anos",
		SubstituteVariables("Olá {{user_name}}, você tem {{age}} anos", vars))

	// unresolved placeholders stay literal
	assert.Equal(t, "Olá {{unknown}}",
		SubstituteVariables("Olá {{unknown}}", vars))

	// whitespace inside braces is tolerated
	assert.Equal(t, "John", SubstituteVariables("{{ user_name }}", vars))

	assert.Equal(t, "no placeholders", SubstituteVariables("no placeholders", nil))
}

func TestFormatVariablesBlock(t *testing.T) {
	assert.Empty(t, formatVariablesBlock(nil))

	block := formatVariablesBlock(map[string]any{"user_name": "John"})
	assert.Contains(t, block, "=== USER INFORMATION ===")
	assert.Contains(t, block, "Name: John")
}
