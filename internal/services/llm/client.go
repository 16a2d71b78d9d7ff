package llm

import (
	"context"

	"google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Client sends a prompt to a generative model and returns the raw text of its
// reply, constrained to the supplied schema and to JSON output.
type Client interface {
	// GenerateJSON performs exactly one round trip to the model service
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)

	// Model returns the identifier of the model requests are sent to
	Model() string
}
