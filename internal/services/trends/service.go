package trends

import (
	"context"

	"github.com/rs/zerolog/log"
)

// NoDataAdvisory is shown when a query succeeds without any trending topics.
const NoDataAdvisory = "Analysis complete, but no specific trending topics were found for your query. Try broadening your search."

// Querier runs one model query for a canonical request.
type Querier interface {
	Query(ctx context.Context, req TrendRequest) (*Result, error)
}

// Analysis is a successful query outcome. NoData is advisory, not a failure.
type Analysis struct {
	Result   *Result
	NoData   bool
	Advisory string
}

// Service is the entry point used by the presentation layer.
type Service struct {
	querier Querier
}

func NewService(querier Querier) *Service {
	return &Service{querier: querier}
}

// Analyze validates req, runs the query and classifies the outcome. A request
// without platforms fails with ErrNoPlatformSelected before any model call.
// Safe for strictly sequential use; concurrent callers must be serialized by
// the caller.
func (s *Service) Analyze(ctx context.Context, req TrendRequest) (*Analysis, error) {
	if len(req.Platforms) == 0 {
		return nil, ErrNoPlatformSelected
	}

	result, err := s.querier.Query(ctx, req)
	if err != nil {
		return nil, err
	}

	analysis := Classify(result)
	if analysis.NoData {
		log.Info().
			Strs("platforms", req.Platforms).
			Str("topic", req.Topic).
			Msg("Analysis returned no trending topics")
	} else {
		log.Info().
			Strs("platforms", req.Platforms).
			Str("output_format", string(req.OutputFormat)).
			Msg("Validation successful: received structured data from analysis")
	}

	return analysis, nil
}

// AnalyzeSelection normalizes raw form state and analyzes it.
func (s *Service) AnalyzeSelection(ctx context.Context, sel Selection) (*Analysis, error) {
	req, err := Normalize(sel)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, req)
}

// Classify flags an empty result as NoDataFound.
func Classify(result *Result) *Analysis {
	analysis := &Analysis{Result: result}
	if result.Empty() {
		analysis.NoData = true
		analysis.Advisory = NoDataAdvisory
	}
	return analysis
}
