package trends_test

import (
	"context"

	"google.golang.org/genai"
)

type stubClient struct {
	reply   string
	err     error
	calls   int
	prompts []string
	schemas []*genai.Schema
}

func (c *stubClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	c.calls++
	c.prompts = append(c.prompts, prompt)
	c.schemas = append(c.schemas, schema)
	return c.reply, c.err
}

func (c *stubClient) Model() string {
	return "stub-model"
}
