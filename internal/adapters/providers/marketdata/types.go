package marketdata

import (
	"fmt"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
)

// EarningsResponse is the columnar body of /stocks/earnings/{symbol}/.
type EarningsResponse struct {
	Status     string   `json:"s"`
	ErrMsg     string   `json:"errmsg,omitempty"`
	Symbol     []string `json:"symbol"`
	ReportDate []int64  `json:"reportDate"`
	ReportTime []string `json:"reportTime"`
}

// APIError represents an error from the MarketData API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("MarketData API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Unwrap classifies API errors as upstream failures.
func (e *APIError) Unwrap() error {
	return apperrors.ErrUpstream
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("MarketData rate limit exceeded, retry after %q", e.RetryAfter)
}

// Unwrap classifies rate limiting as an upstream failure.
func (e *RateLimitError) Unwrap() error {
	return apperrors.ErrUpstream
}
