// Package marketdata is the primary earnings provider: MarketData.app's earnings endpoint,
// which reports upcoming report dates as unix timestamps.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/logging"
)

const (
	// DefaultBaseURL is the base URL for the MarketData.app API.
	DefaultBaseURL = "https://api.marketdata.app/v1"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 10 * time.Second

	statusNoData = "no_data"
	statusError  = "error"
)

// Client is a MarketData.app earnings client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	location   *time.Location
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken authenticates requests. The endpoint works without one at a lower quota.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithLocation sets the zone report timestamps are converted in. Defaults to time.Local.
func WithLocation(loc *time.Location) ClientOption {
	return func(c *Client) {
		c.location = loc
	}
}

// NewClient creates a new MarketData.app client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.EarningsProvider = (*Client)(nil)

// Name identifies the provider in logs, metrics and the stored event's source.
func (c *Client) Name() string {
	return string(domain.SourceMarketData)
}

// AttemptLookup fetches the next report date for ticker. It returns (nil, nil) when the API
// has no earnings rows for the symbol.
func (c *Client) AttemptLookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error) {
	ticker = domain.NormalizeTicker(ticker)

	var result EarningsResponse
	found, err := c.get(ctx, "/stocks/earnings/"+ticker+"/", &result)
	if err != nil {
		return nil, err
	}
	if !found || result.Status == statusNoData {
		return nil, nil
	}
	if result.Status == statusError {
		return nil, &APIError{StatusCode: http.StatusOK, Message: result.ErrMsg, Endpoint: "/stocks/earnings"}
	}
	if len(result.ReportDate) == 0 {
		return nil, nil
	}

	reported := time.Unix(result.ReportDate[0], 0).In(c.location)
	event := &domain.EarningsEvent{
		Symbol: ticker,
		Name:   ticker,
		Date:   domain.FormatISODate(reported),
		Time:   domain.TimeTBD,
		Source: domain.SourceMarketData,
	}
	if len(result.ReportTime) > 0 && strings.TrimSpace(result.ReportTime[0]) != "" {
		event.Time = result.ReportTime[0]
	}
	if len(result.Symbol) > 0 && result.Symbol[0] != "" {
		event.Symbol = domain.NormalizeTicker(result.Symbol[0])
	}

	logging.FromContext(ctx).Debug("MarketData lookup succeeded",
		slog.String("ticker", ticker),
		slog.String("date", event.Date),
		slog.String("time", event.Time))
	return event, nil
}

// Ping checks that the API answers its status endpoint.
func (c *Client) Ping(ctx context.Context) error {
	var status map[string]any
	if _, err := c.get(ctx, "/utilities/status/", &status); err != nil {
		return err
	}
	return nil
}

// get performs a GET request to the API. A 404 reports found=false with no error,
// which is how the API answers symbols without earnings rows.
func (c *Client) get(ctx context.Context, path string, result any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logging.FromContext(ctx).Debug("MarketData API request", slog.String("url", c.baseURL+path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return false, &RateLimitError{RetryAfter: resp.Header.Get("Retry-After")}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, &APIError{StatusCode: resp.StatusCode, Message: string(body), Endpoint: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %w", apperrors.ErrUpstream, err)
	}
	return true, nil
}
