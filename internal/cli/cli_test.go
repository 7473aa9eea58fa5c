package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	"github.com/SscSPs/earnings_calendar_app/internal/cli"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	"github.com/SscSPs/earnings_calendar_app/internal/core/services"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/config"
)

// memoryRepo is an in-process event document.
type memoryRepo struct {
	doc      []byte
	readErr  error
	writeErr error
	writes   int
}

func (r *memoryRepo) ReadDocument(context.Context) ([]byte, error) {
	return r.doc, r.readErr
}

func (r *memoryRepo) WriteDocument(_ context.Context, events []domain.EarningsEvent) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.writes++
	b, err := json.Marshal(events)
	r.doc = b
	return err
}

// stubProvider answers from a fixed table.
type stubProvider struct {
	name  string
	dates map[string]string
}

func (p stubProvider) Name() string { return p.name }

func (p stubProvider) AttemptLookup(_ context.Context, ticker string) (*domain.EarningsEvent, error) {
	date, ok := p.dates[ticker]
	if !ok {
		return nil, nil
	}
	return &domain.EarningsEvent{Symbol: ticker, Date: date, Time: "After market close", Source: domain.Source(p.name)}, nil
}

var today = time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC)

func newApp(repo *memoryRepo) *cli.App {
	provider := stubProvider{name: string(domain.SourceMarketData), dates: map[string]string{"NVDA": "2025-11-19"}}
	return &cli.App{
		Config:   &config.Config{StoreBackend: config.StoreBackendJSONBin},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Services: services.NewServiceContainer(portsrepo.RepositoryProvider{EventDocumentRepo: repo}, provider),
		Renderer: calendar.NewRenderer("https://logo.example.com"),
		Now:      func() time.Time { return today },
		Location: time.UTC,
	}
}

func execute(t *testing.T, app *cli.App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAdd_LookedUp(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[{"symbol":"AAPL","name":"Apple Inc.","date":"2025-11-05"}]`)}

	out, err := execute(t, newApp(repo), "", "add", "nvda")

	require.NoError(t, err)
	assert.Contains(t, out, "Added NVDA: 2025-11-19")
	assert.Equal(t, 1, repo.writes)
	assert.Contains(t, string(repo.doc), `"symbol":"NVDA"`)
	assert.Contains(t, string(repo.doc), `"domain":"nvidia.com"`)
}

func TestAdd_ManualEntryFromStdin(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[]`)}

	out, err := execute(t, newApp(repo), "2025-12-02\n", "add", "ZZZZ")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter date manually")
	assert.Contains(t, out, "Added ZZZZ: 2025-12-02")
	assert.Contains(t, string(repo.doc), `"source":"manual"`)
}

func TestAdd_CancelledManualEntryWritesNothing(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[{"symbol":"AAPL","date":"2025-11-05"}]`)}

	out, err := execute(t, newApp(repo), "\n", "add", "ZZZZ")

	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled adding ZZZZ")
	assert.Zero(t, repo.writes)
	assert.JSONEq(t, `[{"symbol":"AAPL","date":"2025-11-05"}]`, string(repo.doc))
}

func TestAdd_InvalidTicker(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[]`)}

	_, err := execute(t, newApp(repo), "", "add", "TOOLONG")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, repo.writes)
}

func TestAdd_WriteFailureWarns(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[]`), writeErr: errors.New("disk full")}

	out, err := execute(t, newApp(repo), "", "add", "NVDA")

	require.NoError(t, err)
	assert.Contains(t, out, services.WarnSavedLocally)
	assert.Contains(t, out, "not saved")
}

func TestList(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`{"data":[{"symbol":"AMD","name":"Advanced Micro Devices","date":"2025-11-04","time":"After market close","estimate":"0.92","currency":"USD"},{"symbol":"PYPL","date":"TBD"}]}`)}

	out, err := execute(t, newApp(repo), "", "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Symbol"))
	assert.Contains(t, lines[2], "AMD")
	assert.Contains(t, lines[2], "6 days ago")
	assert.Contains(t, lines[2], "0.92 USD")
	assert.Contains(t, lines[3], "PYPL")
}

func TestList_JSON(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[{"symbol":"AMD","date":"2025-11-04"}]`)}

	out, err := execute(t, newApp(repo), "", "list", "--json")

	require.NoError(t, err)
	var events []domain.EarningsEvent
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "AMD", events[0].Symbol)
}

func TestList_StoreFailureUsesPreloaded(t *testing.T) {
	repo := &memoryRepo{readErr: errors.New("connection refused")}

	out, err := execute(t, newApp(repo), "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, calendar.PreloadedWarning)
	assert.Contains(t, out, "NVDA")
}

func TestCalendar_Month(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[{"symbol":"AAPL","date":"2025-11-05"}]`)}

	out, err := execute(t, newApp(repo), "", "calendar", "--month", "2025-11")

	require.NoError(t, err)
	assert.Contains(t, out, "November 2025")
	assert.Contains(t, out, "AAPL")
}

func TestCalendar_DefaultsToEarliestEvent(t *testing.T) {
	repo := &memoryRepo{doc: []byte(`[{"symbol":"AAPL","date":"2026-01-29"},{"symbol":"AVGO","date":"2025-12-11"}]`)}

	out, err := execute(t, newApp(repo), "", "calendar")

	require.NoError(t, err)
	assert.Contains(t, out, "December 2025")
}

func TestCalendar_InvalidMonth(t *testing.T) {
	_, err := execute(t, newApp(&memoryRepo{}), "", "calendar", "--month", "Nov")
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	out, err := execute(t, newApp(&memoryRepo{}), "", "fetch", "NVDA", "--json")

	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"NVDA","nextEarnings":"2025-11-19","name":"NVDA","time":"After market close","source":"MarketData"}`, out)

	_, err = execute(t, newApp(&memoryRepo{}), "", "fetch", "ZZZZ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestHealth(t *testing.T) {
	out, err := execute(t, newApp(&memoryRepo{doc: []byte(`[]`)}), "", "health")

	require.NoError(t, err)
	assert.Contains(t, out, "store (jsonbin)")
	assert.Contains(t, out, "ok")
}
