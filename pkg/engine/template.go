package engine

import (
	"fmt"
	"regexp"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// SubstituteVariables replaces {{name}} placeholders with extracted
// variable values. Placeholders without a value are left untouched so
// the model sees that the information is still missing.
func SubstituteVariables(text string, variables map[string]any) string {
	if len(variables) == 0 {
		return text
	}
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := variables[name]
		if !ok || value == nil {
			return match
		}
		return fmt.Sprintf("%v", value)
	})
}
