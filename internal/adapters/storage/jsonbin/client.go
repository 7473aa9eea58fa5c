// Package jsonbin stores the event document in a JSONBin.io v3 bin.
package jsonbin

import (
	"bytes"
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
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/logging"
)

const (
	// DefaultBaseURL is the JSONBin v3 API root.
	DefaultBaseURL = "https://api.jsonbin.io/v3"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 10 * time.Second

	headerMasterKey = "X-Master-Key"
)

// Store reads and overwrites a single bin.
type Store struct {
	baseURL    string
	binID      string
	masterKey  string
	httpClient *http.Client
}

// Option configures the Store.
type Option func(*Store)

// WithBaseURL sets a custom API root.
func WithBaseURL(baseURL string) Option {
	return func(s *Store) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Store) {
		s.httpClient = httpClient
	}
}

// NewStore creates a bin-backed document store. Missing credentials are reported per call
// as apperrors.ErrConfig.
func NewStore(binID, masterKey string, opts ...Option) *Store {
	s := &Store{
		baseURL:    DefaultBaseURL,
		binID:      binID,
		masterKey:  masterKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portsrepo.EventDocumentRepositoryFacade = (*Store)(nil)

// readResponse is the envelope JSONBin wraps the stored record in.
type readResponse struct {
	Record   json.RawMessage `json:"record"`
	Metadata struct {
		ID      string `json:"id"`
		Private bool   `json:"private"`
	} `json:"metadata"`
}

// ReadDocument returns the bin's latest record verbatim.
func (s *Store) ReadDocument(ctx context.Context) ([]byte, error) {
	if err := s.checkConfig(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.binURL()+"/latest", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(headerMasterKey, s.masterKey)

	var envelope readResponse
	if err := s.do(ctx, req, &envelope); err != nil {
		return nil, err
	}
	if envelope.Record == nil {
		return []byte{}, nil
	}
	return envelope.Record, nil
}

// WriteDocument replaces the bin's content with events as a bare array.
func (s *Store) WriteDocument(ctx context.Context, events []domain.EarningsEvent) error {
	if err := s.checkConfig(); err != nil {
		return err
	}
	if events == nil {
		events = []domain.EarningsEvent{}
	}

	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.binURL(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(headerMasterKey, s.masterKey)
	req.Header.Set("Content-Type", "application/json")

	return s.do(ctx, req, nil)
}

func (s *Store) do(ctx context.Context, req *http.Request, result any) error {
	logging.FromContext(ctx).Debug("JSONBin request",
		slog.String("method", req.Method),
		slog.String("bin", s.binID))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: jsonbin request failed: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body)), Method: req.Method}
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode jsonbin response: %w", apperrors.ErrUpstream, err)
	}
	return nil
}

func (s *Store) binURL() string {
	return s.baseURL + "/b/" + s.binID
}

func (s *Store) checkConfig() error {
	if s.binID == "" || s.masterKey == "" {
		return fmt.Errorf("%w: missing JSONBin credentials (JSONBIN_BIN_ID, JSONBIN_MASTER_KEY)", apperrors.ErrConfig)
	}
	return nil
}

// APIError is a non-2xx answer from JSONBin.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("JSONBin API error: %s (status: %d, method: %s)", e.Message, e.StatusCode, e.Method)
}

// Unwrap classifies API errors as upstream failures.
func (e *APIError) Unwrap() error {
	return apperrors.ErrUpstream
}
