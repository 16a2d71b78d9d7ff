package trends

import "encoding/json"

// OutputFormat selects the shape of an analysis result, never its content.
type OutputFormat string

const (
	FormatAggregated  OutputFormat = "aggregated"
	FormatPerPlatform OutputFormat = "per-platform"
)

// AggregatedPlatform labels the single synthetic result of an aggregated analysis.
const AggregatedPlatform = "Aggregated"

func (f OutputFormat) Valid() bool {
	return f == FormatAggregated || f == FormatPerPlatform
}

// TrendRequest is the canonical request handed to the model query adapter.
// Empty Topic, Month or Day mean "unspecified".
type TrendRequest struct {
	Platforms    []string     `json:"platforms"`
	Topic        string       `json:"topic"`
	Month        string       `json:"month"`
	Day          string       `json:"day"`
	OutputFormat OutputFormat `json:"output_format"`
}

type Keyword struct {
	Keyword         string  `json:"keyword"`
	ViralPercentage float64 `json:"viral_percentage"`
}

// Band buckets the virality score the way the report colors it.
func (k Keyword) Band() string {
	switch {
	case k.ViralPercentage > 85:
		return "high"
	case k.ViralPercentage > 60:
		return "medium"
	default:
		return "low"
	}
}

type VerifiedResource struct {
	Description string `json:"description"`
	URL         string `json:"url"`
}

type TrendingTopic struct {
	Topic             string             `json:"topic"`
	Keywords          []Keyword          `json:"keywords"`
	Hashtags          []string           `json:"hashtags"`
	PopularAudio      []string           `json:"popular_audio"`
	VerifiedResources []VerifiedResource `json:"verified_resources"`
}

type TimeFrame struct {
	Month *string `json:"month"`
	Day   *string `json:"day"`
}

// TrendAnalysisResult is one platform's report, or the single "Aggregated" one.
type TrendAnalysisResult struct {
	Platform       string          `json:"platform"`
	TimeFrame      TimeFrame       `json:"time_frame"`
	SelectedTopic  string          `json:"selected_topic"`
	TrendingTopics []TrendingTopic `json:"trending_topics"`
	Error          *string         `json:"error"`
}

// Result is the envelope returned for one query. Exactly one of Aggregated and
// PerPlatform is meaningful, chosen by Format.
type Result struct {
	Format      OutputFormat
	Aggregated  *TrendAnalysisResult
	PerPlatform []TrendAnalysisResult
}

// Empty reports whether the query produced nothing worth showing: an empty list
// in per-platform mode, or an aggregated object without trending topics.
func (r *Result) Empty() bool {
	if r.Format == FormatPerPlatform {
		return len(r.PerPlatform) == 0
	}
	return r.Aggregated == nil || len(r.Aggregated.TrendingTopics) == 0
}

// MarshalJSON emits the payload alone: an object or an array, per Format.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Format == FormatPerPlatform {
		if r.PerPlatform == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(r.PerPlatform)
	}
	return json.Marshal(r.Aggregated)
}
