package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR_NAME}} references in the settings file
// with environment values before YAML parsing. Template syntax instead
// of $VAR keeps literal dollar signs intact: flow prompt text, regex
// patterns and passwords routinely contain them.
//
// Unset variables expand to the empty string; required-field validation
// happens after parsing. Content that fails to parse or execute as a
// template is returned unchanged so plain YAML always passes through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("settings").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, env); err != nil {
		return data
	}
	return out.Bytes()
}
