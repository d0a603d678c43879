// Package frontmatter composes YAML frontmatter blocks for note bodies.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Compose prepends a frontmatter block to content. With no fields the
// content is returned as-is.
func Compose(fields map[string]any, content string) (string, error) {
	if len(fields) == 0 {
		return content, nil
	}

	out, err := yaml.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	return "---\n" + string(out) + "---\n" + content, nil
}

// ParseFields converts repeated key=value flag values into a frontmatter
// map. Values are interpreted as YAML, so numbers, booleans and flow
// sequences like "[a, b]" keep their natural types.
func ParseFields(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid frontmatter field %q: expected key=value", pair)
		}
		fields[key] = Value(raw)
	}
	return fields, nil
}

// Value interprets a raw flag value as a YAML value. Anything that fails to
// parse stays a plain string.
func Value(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
