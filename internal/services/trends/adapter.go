package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"trend-system/internal/services/llm"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Adapter translates a TrendRequest into exactly one structured-generation
// call and unwraps the reply. It holds no per-query state.
type Adapter struct {
	client llm.Client
}

func NewAdapter(client llm.Client) *Adapter {
	return &Adapter{client: client}
}

// Query builds the prompt and schema, calls the model once and returns the
// unwrapped result. Every failure is an *AnalysisError.
func (a *Adapter) Query(ctx context.Context, req TrendRequest) (*Result, error) {
	logger := log.With().
		Strs("platforms", req.Platforms).
		Str("output_format", string(req.OutputFormat)).
		Str("model", a.client.Model()).
		Logger()

	prompt := BuildPrompt(req)
	schema := BuildSchema(req.OutputFormat)

	logger.Debug().Int("prompt_bytes", len(prompt)).Msg("Awaiting model")

	raw, err := a.client.GenerateJSON(ctx, prompt, schema)
	if err != nil {
		return nil, fail(logger, ErrAnalysisFailed, err)
	}

	result, err := Unwrap(raw, req.OutputFormat)
	if err != nil {
		kind := ErrUnexpectedResponseShape
		if errors.Is(err, ErrMalformedResponse) {
			kind = ErrMalformedResponse
		}
		return nil, fail(logger, kind, err)
	}

	warnOutOfRange(logger, result)
	return result, nil
}

func fail(logger zerolog.Logger, kind, cause error) error {
	logger.Error().
		Err(cause).
		Str("kind", kindName(kind)).
		Msg("Error fetching trending data from model")
	return newAnalysisError(kind)
}

// Unwrap parses a raw model reply of the form {"result": ...}. The payload is
// decoded as an array or an object according to format alone.
func Unwrap(raw string, format OutputFormat) (*Result, error) {
	text := cleanJSONResponse(raw)
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedResponse, truncate(text, 200))
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: reply is not an object: %v", ErrUnexpectedResponseShape, err)
	}

	payload, ok := envelope[ResultKey]
	if !ok || bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return nil, fmt.Errorf("%w: missing %q key", ErrUnexpectedResponseShape, ResultKey)
	}

	result := &Result{Format: format}
	if format == FormatPerPlatform {
		if err := json.Unmarshal(payload, &result.PerPlatform); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponseShape, err)
		}
		if result.PerPlatform == nil {
			result.PerPlatform = []TrendAnalysisResult{}
		}
		return result, nil
	}

	var aggregated TrendAnalysisResult
	if err := json.Unmarshal(payload, &aggregated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponseShape, err)
	}
	result.Aggregated = &aggregated
	return result, nil
}

// cleanJSONResponse trims whitespace and a surrounding markdown fence, if any.
func cleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}

	return strings.TrimSpace(cleaned)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// warnOutOfRange logs scores outside [0,100]. Values are never rescaled.
func warnOutOfRange(logger zerolog.Logger, result *Result) {
	check := func(r *TrendAnalysisResult) {
		for _, topic := range r.TrendingTopics {
			for _, kw := range topic.Keywords {
				if kw.ViralPercentage < 0 || kw.ViralPercentage > 100 {
					logger.Warn().
						Str("platform", r.Platform).
						Str("keyword", kw.Keyword).
						Float64("viral_percentage", kw.ViralPercentage).
						Msg("Viral percentage out of range")
				}
			}
		}
	}

	if result.Aggregated != nil {
		check(result.Aggregated)
	}
	for i := range result.PerPlatform {
		check(&result.PerPlatform[i])
	}
}
