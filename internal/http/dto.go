package http

import "trend-system/internal/services/trends"

// AnalyzeRequest is the submitted form. Platforms are catalog ids or names.
type AnalyzeRequest struct {
	Platforms    []string `json:"platforms" validate:"dive,required,max=50"`
	Topic        string   `json:"topic" validate:"max=200"`
	Month        string   `json:"month" validate:"max=20"`
	Day          string   `json:"day" validate:"max=20"`
	OutputFormat string   `json:"output_format" validate:"omitempty,oneof=aggregated per-platform"`
}

// AnalyzeResponse carries the result as an object or an array, per OutputFormat.
type AnalyzeResponse struct {
	OutputFormat trends.OutputFormat `json:"output_format"`
	Result       *trends.Result      `json:"result"`
	NoData       bool                `json:"no_data"`
	Advisory     string              `json:"advisory,omitempty"`
}

// PlatformsResponse describes the request form and its defaults.
type PlatformsResponse struct {
	Platforms    []trends.Platform   `json:"platforms"`
	Topic        string              `json:"topic"`
	OutputFormat trends.OutputFormat `json:"output_format"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNoPlatformSelected = "NO_PLATFORM_SELECTED"
	ErrCodeInProgress         = "ANALYSIS_IN_PROGRESS"
	ErrCodeAnalysisFailed     = "ANALYSIS_FAILED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewErrorResponse creates a new error response
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}
