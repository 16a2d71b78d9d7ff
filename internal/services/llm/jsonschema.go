package llm

import (
	"strings"

	"google.golang.org/genai"
)

// JSONSchema converts a Gemini schema into a plain JSON Schema document.
// Nullable types become a ["<type>", "null"] union.
func JSONSchema(s *genai.Schema) map[string]any {
	if s == nil {
		return nil
	}

	out := make(map[string]any)
	if s.Type != "" {
		typ := strings.ToLower(string(s.Type))
		if s.Nullable != nil && *s.Nullable {
			out["type"] = []string{typ, "null"}
		} else {
			out["type"] = typ
		}
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if s.Minimum != nil {
		out["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		out["maximum"] = *s.Maximum
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = JSONSchema(prop)
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if s.Items != nil {
		out["items"] = JSONSchema(s.Items)
	}

	return out
}
