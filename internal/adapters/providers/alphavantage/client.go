// Package alphavantage is the secondary earnings provider: Alpha Vantage's EARNINGS_CALENDAR
// function, which answers in CSV.
package alphavantage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/logging"
)

const (
	// DefaultBaseURL is the Alpha Vantage query endpoint.
	DefaultBaseURL = "https://www.alphavantage.co/query"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultHorizon is how far ahead the calendar is searched.
	DefaultHorizon = "3month"

	functionEarningsCalendar = "EARNINGS_CALENDAR"
	noneValue                = "None"
	pingSymbol               = "AAPL"
)

// Client is an Alpha Vantage earnings calendar client.
type Client struct {
	baseURL    string
	apiKey     string
	horizon    string
	httpClient *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHorizon sets the search horizon (3month, 6month or 12month).
func WithHorizon(horizon string) ClientOption {
	return func(c *Client) {
		c.horizon = horizon
	}
}

// NewClient creates a new Alpha Vantage client. An empty apiKey makes every call fail with
// apperrors.ErrConfig.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		horizon:    DefaultHorizon,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.EarningsProvider = (*Client)(nil)

// Name identifies the provider in logs, metrics and the stored event's source.
func (c *Client) Name() string {
	return string(domain.SourceAlphaVantage)
}

// AttemptLookup returns the first calendar row for ticker, or (nil, nil) when the CSV has no
// rows or the row's report date is "None".
func (c *Client) AttemptLookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error) {
	ticker = domain.NormalizeTicker(ticker)

	rows, err := c.earningsCalendar(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	date := strings.TrimSpace(row.ReportDate)
	if date == "" || date == noneValue {
		return nil, nil
	}

	event := &domain.EarningsEvent{
		Symbol:           strings.TrimSpace(row.Symbol),
		Name:             strings.TrimSpace(row.Name),
		Date:             date,
		Time:             domain.TimeTBD,
		Source:           domain.SourceAlphaVantage,
		FiscalDateEnding: optional(row.FiscalDateEnding),
		Currency:         optional(row.Currency),
	}
	if est := optional(row.Estimate); est != "" {
		if d, err := decimal.NewFromString(est); err == nil {
			event.Estimate = &d
		}
	}

	logging.FromContext(ctx).Debug("Alpha Vantage lookup succeeded",
		slog.String("ticker", ticker),
		slog.String("date", event.Date))
	return event, nil
}

// Ping runs a real calendar query and reports apperrors.ErrUpstream when the answer is not
// a calendar (error notice, rate limit).
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.earningsCalendar(ctx, pingSymbol)
	return err
}

func (c *Client) earningsCalendar(ctx context.Context, symbol string) ([]CalendarRow, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: ALPHAVANTAGE_KEY is not set", apperrors.ErrConfig)
	}

	params := url.Values{}
	params.Set("function", functionEarningsCalendar)
	params.Set("symbol", symbol)
	params.Set("horizon", c.horizon)

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}
	if err := detectNotice(body); err != nil {
		return nil, err
	}

	// Header only, or nothing at all.
	if len(strings.Split(strings.TrimSpace(body), "\n")) <= 1 {
		return nil, nil
	}

	var rows []CalendarRow
	if err := gocsv.UnmarshalString(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to parse earnings calendar csv: %w", apperrors.ErrUpstream, err)
	}
	return rows, nil
}

// get performs a GET request and returns the raw body.
func (c *Client) get(ctx context.Context, params url.Values) (string, error) {
	logging.FromContext(ctx).Debug("Alpha Vantage API request",
		slog.String("url", c.baseURL),
		slog.String("function", params.Get("function")),
		slog.String("symbol", params.Get("symbol")))

	params.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return string(body), nil
}

// detectNotice recognizes the JSON notices the API returns with HTTP 200 instead of CSV.
func detectNotice(body string) error {
	switch {
	case strings.Contains(body, "Error Message"):
		return &APIError{StatusCode: http.StatusOK, Message: strings.TrimSpace(body)}
	case strings.Contains(body, "Note") && strings.Contains(body, "premium"),
		strings.Contains(body, `"Information"`):
		return &RateLimitError{Message: strings.TrimSpace(body)}
	}
	return nil
}

func optional(s string) string {
	s = strings.TrimSpace(s)
	if s == noneValue {
		return ""
	}
	return s
}
