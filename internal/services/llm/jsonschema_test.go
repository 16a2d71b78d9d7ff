package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestJSONSchema(t *testing.T) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"result": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"error": {Type: genai.TypeString, Nullable: genai.Ptr(true), Description: "why"},
						"score": {Type: genai.TypeNumber, Minimum: genai.Ptr(0.0), Maximum: genai.Ptr(100.0)},
					},
				},
			},
		},
		Required: []string{"result"},
	}

	expected := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"result": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"error": map[string]any{"type": []string{"string", "null"}, "description": "why"},
						"score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
					},
				},
			},
		},
		"required": []string{"result"},
	}

	assert.Equal(t, expected, JSONSchema(schema))
}

func TestJSONSchema_Nil(t *testing.T) {
	assert.Nil(t, JSONSchema(nil))
}
