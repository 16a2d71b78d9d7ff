package trends_test

import (
	"testing"

	"trend-system/internal/services/trends"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestBuildPrompt(t *testing.T) {
	prompt := trends.BuildPrompt(trends.TrendRequest{
		Platforms:    []string{"Instagram", "TikTok"},
		Topic:        "AI videos",
		OutputFormat: trends.FormatPerPlatform,
	})

	assert.Contains(t, prompt, "expert social media trend analyst")
	assert.Contains(t, prompt, "- Platforms: Instagram, TikTok\n")
	assert.Contains(t, prompt, `- Topic/Subject: "AI videos"`)
	assert.Contains(t, prompt, "Month: not specified, Day: not specified")
	assert.Contains(t, prompt, "- Output Format: per-platform")
	assert.Contains(t, prompt, "between 0 and 100")
	assert.Contains(t, prompt, "verification resources")
	assert.Contains(t, prompt, "'error' field")
	assert.Contains(t, prompt, "descending order")
	assert.Contains(t, prompt, "ONLY the JSON object")
}

func TestBuildPrompt_TimeFrameAndAggregated(t *testing.T) {
	prompt := trends.BuildPrompt(trends.TrendRequest{
		Platforms:    []string{"YouTube"},
		Topic:        "",
		Month:        "July",
		Day:          "4",
		OutputFormat: trends.FormatAggregated,
	})

	assert.Contains(t, prompt, "Month: July, Day: 4")
	assert.Contains(t, prompt, `- Topic/Subject: ""`)
	assert.Contains(t, prompt, "- Output Format: aggregated")
	assert.Contains(t, prompt, `"Aggregated"`)
}

func TestBuildSchema(t *testing.T) {
	perPlatform := trends.BuildSchema(trends.FormatPerPlatform)
	aggregated := trends.BuildSchema(trends.FormatAggregated)

	assert.Equal(t, genai.TypeObject, perPlatform.Type)
	assert.Equal(t, []string{trends.ResultKey}, perPlatform.Required)

	list := perPlatform.Properties[trends.ResultKey]
	if assert.NotNil(t, list) {
		assert.Equal(t, genai.TypeArray, list.Type)
	}

	single := aggregated.Properties[trends.ResultKey]
	if assert.NotNil(t, single) {
		assert.Equal(t, genai.TypeObject, single.Type)
		assert.Equal(t, single, list.Items, "both shapes share one object schema")
	}

	for _, field := range []string{"platform", "time_frame", "selected_topic", "trending_topics", "error"} {
		assert.Contains(t, single.Properties, field)
	}
	assert.True(t, *single.Properties["error"].Nullable)

	keyword := single.Properties["trending_topics"].Items.Properties["keywords"].Items
	score := keyword.Properties["viral_percentage"]
	assert.Equal(t, genai.TypeNumber, score.Type)
	assert.Equal(t, 0.0, *score.Minimum)
	assert.Equal(t, 100.0, *score.Maximum)
}

func TestKeyword_Band(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{score: 92, expected: "high"},
		{score: 85, expected: "medium"},
		{score: 61, expected: "medium"},
		{score: 60, expected: "low"},
		{score: 0, expected: "low"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, trends.Keyword{ViralPercentage: tt.score}.Band())
	}
}
