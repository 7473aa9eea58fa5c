package alphavantage

import (
	"fmt"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
)

// CalendarRow is one line of the EARNINGS_CALENDAR CSV.
type CalendarRow struct {
	Symbol           string `csv:"symbol"`
	Name             string `csv:"name"`
	ReportDate       string `csv:"reportDate"`
	FiscalDateEnding string `csv:"fiscalDateEnding"`
	Estimate         string `csv:"estimate"`
	Currency         string `csv:"currency"`
}

// APIError represents an error from the Alpha Vantage API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Alpha Vantage API error: %s (status: %d)", e.Message, e.StatusCode)
}

// Unwrap classifies API errors as upstream failures.
func (e *APIError) Unwrap() error {
	return apperrors.ErrUpstream
}

// RateLimitError is returned when the API answers with a usage-limit notice.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Alpha Vantage rate limit reached: %s", e.Message)
}

// Unwrap classifies rate limiting as an upstream failure.
func (e *RateLimitError) Unwrap() error {
	return apperrors.ErrUpstream
}
