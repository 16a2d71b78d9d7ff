package trends

import (
	"errors"
	"fmt"
)

const analysisFailedMessage = "Failed to analyze trends. The AI model may be overloaded or the request is invalid."

// NoPlatformSelectedMessage is shown to the user for ErrNoPlatformSelected.
const NoPlatformSelectedMessage = "Please select at least one social media platform."

var (
	ErrNoPlatformSelected      = errors.New("no platform selected")
	ErrMalformedResponse       = errors.New("model reply is not valid JSON")
	ErrUnexpectedResponseShape = errors.New("unexpected API response structure")
	ErrAnalysisFailed          = errors.New(analysisFailedMessage)
)

// AnalysisError is the only error the adapter returns. Its message is fixed
// and carries no transport or service detail. The cause is logged where it
// happens and is not retained.
type AnalysisError struct {
	// Kind is ErrMalformedResponse, ErrUnexpectedResponseShape or ErrAnalysisFailed
	Kind error
}

func (e *AnalysisError) Error() string {
	return analysisFailedMessage
}

func (e *AnalysisError) Is(target error) bool {
	return target == ErrAnalysisFailed || target == e.Kind
}

func newAnalysisError(kind error) *AnalysisError {
	return &AnalysisError{Kind: kind}
}

// kindName is the log label of an error kind.
func kindName(kind error) string {
	switch kind {
	case ErrMalformedResponse:
		return "malformed_response"
	case ErrUnexpectedResponseShape:
		return "unexpected_response_shape"
	case ErrAnalysisFailed:
		return "analysis_failed"
	default:
		return fmt.Sprintf("%v", kind)
	}
}
