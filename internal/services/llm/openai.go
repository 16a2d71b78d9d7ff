package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const responseSchemaName = "trend_analysis"

type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateJSON asks for a chat completion whose message content must match
// schema, translated to the JSON Schema dialect of the OpenAI API.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   responseSchemaName,
					Schema: JSONSchema(schema),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenAI response")
	}

	text := completion.Choices[0].Message.Content
	log.Debug().
		Str("model", c.model).
		Int("response_bytes", len(text)).
		Int64("tokens_in", completion.Usage.PromptTokens).
		Int64("tokens_out", completion.Usage.CompletionTokens).
		Msg("OpenAI response received")

	return text, nil
}

func (c *OpenAIClient) Model() string {
	return c.model
}

var _ Client = (*OpenAIClient)(nil)
