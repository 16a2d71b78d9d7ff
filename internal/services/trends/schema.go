package trends

import "google.golang.org/genai"

// ResultKey wraps every reply so the adapter can unwrap it without guessing.
const ResultKey = "result"

// BuildSchema returns the structured-output schema for format: the shared
// per-result object under "result", either bare or as array items.
func BuildSchema(format OutputFormat) *genai.Schema {
	result := analysisObjectSchema()
	if format == FormatPerPlatform {
		result = &genai.Schema{
			Type:  genai.TypeArray,
			Items: result,
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			ResultKey: result,
		},
		Required: []string{ResultKey},
	}
}

func analysisObjectSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"platform": {
				Type:        genai.TypeString,
				Description: `The social media platform name. For aggregated results, use "Aggregated".`,
			},
			"time_frame": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {Type: genai.TypeString, Nullable: genai.Ptr(true)},
					"day":   {Type: genai.TypeString, Nullable: genai.Ptr(true)},
				},
			},
			"selected_topic": {Type: genai.TypeString},
			"trending_topics": {
				Type:        genai.TypeArray,
				Description: "Trending topics in descending order of impact.",
				Items:       trendingTopicSchema(),
			},
			"error": {
				Type:        genai.TypeString,
				Nullable:    genai.Ptr(true),
				Description: "Why data for this platform or topic is unavailable, or null.",
			},
		},
		PropertyOrdering: []string{"platform", "time_frame", "selected_topic", "trending_topics", "error"},
		Required:         []string{"platform", "time_frame", "selected_topic", "trending_topics", "error"},
	}
}

func trendingTopicSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic": {Type: genai.TypeString},
			"keywords": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"keyword": {Type: genai.TypeString},
						"viral_percentage": {
							Type:        genai.TypeNumber,
							Description: "Potential of the keyword to drive high engagement, 0 to 100.",
							Minimum:     genai.Ptr(0.0),
							Maximum:     genai.Ptr(100.0),
						},
					},
					Required: []string{"keyword", "viral_percentage"},
				},
			},
			"hashtags":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"popular_audio": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"verified_resources": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"description": {Type: genai.TypeString},
						"url":         {Type: genai.TypeString},
					},
				},
			},
		},
		PropertyOrdering: []string{"topic", "keywords", "hashtags", "popular_audio", "verified_resources"},
	}
}
