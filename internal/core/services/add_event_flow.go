package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/metrics"
)

// Warnings surfaced by the add-event flow.
const (
	WarnSavedLocally = "Added locally (backend save failed)"
	msgEmptyTicker   = "Please enter a ticker symbol"
	msgBadTicker     = "Invalid ticker format (use 1-5 letters, e.g., AAPL)"
	msgBadManualDate = "Invalid date (use YYYY-MM-DD)"
)

// addEventFlow runs INPUT → VALIDATE → LOOKUP → (FOUND | NOT_FOUND → PROMPT_MANUAL) → PERSIST → RENDER.
type addEventFlow struct {
	BaseService
	lookup portssvc.EarningsLookupSvc
	store  portssvc.EventStoreWriterSvc
}

// NewAddEventFlow creates the add-event orchestration.
func NewAddEventFlow(lookup portssvc.EarningsLookupSvc, store portssvc.EventStoreWriterSvc) portssvc.AddEventFlowSvc {
	return &addEventFlow{lookup: lookup, store: store}
}

var _ portssvc.AddEventFlowSvc = (*addEventFlow)(nil)

func (f *addEventFlow) Run(ctx context.Context, session *calendar.Session, rawTicker string, prompter portssvc.ManualEntryPrompter) (*portssvc.AddEventResult, error) {
	ticker, existing, err := f.validate(ctx, session, rawTicker)
	if err != nil || existing != nil {
		return existing, err
	}
	logger := f.GetLogger(ctx).With(slog.String("ticker", ticker))

	found, err := f.lookup.Lookup(ctx, ticker)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrUpstream) || errors.Is(err, apperrors.ErrConfig) {
			logger.Warn("Lookup failed, asking for manual entry", slog.String("error", err.Error()))
		}
		return f.manual(ctx, session, ticker, prompter)
	}

	event := *found
	event.Symbol = ticker
	return f.persist(ctx, session, event.WithDefaults())
}

func (f *addEventFlow) RunManual(ctx context.Context, session *calendar.Session, rawTicker string, prompter portssvc.ManualEntryPrompter) (*portssvc.AddEventResult, error) {
	ticker, existing, err := f.validate(ctx, session, rawTicker)
	if err != nil || existing != nil {
		return existing, err
	}
	return f.manual(ctx, session, ticker, prompter)
}

// validate normalizes the ticker. A ticker already in the session yields a finished EXISTING result.
func (f *addEventFlow) validate(ctx context.Context, session *calendar.Session, rawTicker string) (string, *portssvc.AddEventResult, error) {
	ticker := domain.NormalizeTicker(rawTicker)
	if ticker == "" {
		return "", nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, msgEmptyTicker)
	}
	if !domain.IsValidTicker(ticker) {
		return "", nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, msgBadTicker)
	}

	if existing, ok := session.FindSymbol(ticker); ok {
		f.GetLogger(ctx).Info("Ticker already on the calendar", slog.String("ticker", ticker))
		return ticker, f.finish(&portssvc.AddEventResult{State: portssvc.StateExisting, Ticker: ticker, Event: &existing, Durable: session.Durable()}), nil
	}
	return ticker, nil, nil
}

// manual runs PROMPT_MANUAL → (ENTERED → PERSIST | CANCELLED → ABORT).
func (f *addEventFlow) manual(ctx context.Context, session *calendar.Session, ticker string, prompter portssvc.ManualEntryPrompter) (*portssvc.AddEventResult, error) {
	logger := f.GetLogger(ctx).With(slog.String("ticker", ticker))

	date, entered, err := prompter.PromptManualDate(ctx, ticker)
	if errors.Is(err, portssvc.ErrManualEntryDeferred) {
		return f.finish(&portssvc.AddEventResult{State: portssvc.StatePromptManual, Ticker: ticker}), nil
	}
	if err != nil {
		logger.Warn("Manual entry prompt failed", slog.String("error", err.Error()))
		entered = false
	}
	if !entered {
		logger.Info("Manual entry cancelled")
		return f.finish(&portssvc.AddEventResult{
			State:   portssvc.StateAbort,
			Ticker:  ticker,
			Durable: session.Durable(),
			Warning: "Cancelled adding " + ticker,
		}), nil
	}

	date = strings.TrimSpace(date)
	if !domain.IsValidEventDate(date) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, msgBadManualDate)
	}
	return f.persist(ctx, session, domain.EarningsEvent{Symbol: ticker, Date: date, Source: domain.SourceManual}.WithDefaults())
}

// persist writes the event. A failed write keeps the event in the session with a warning.
func (f *addEventFlow) persist(ctx context.Context, session *calendar.Session, event domain.EarningsEvent) (*portssvc.AddEventResult, error) {
	logger := f.GetLogger(ctx).With(slog.String("ticker", event.Symbol))

	events, err := f.store.Append(ctx, event)
	if err != nil {
		logger.Error("Persisting event failed, keeping it in the session only", slog.String("error", err.Error()))
		session.AddLocal(event)
		session.Warn(WarnSavedLocally)
		return f.finish(&portssvc.AddEventResult{
			State:   portssvc.StateRender,
			Ticker:  event.Symbol,
			Event:   &event,
			Durable: false,
			Warning: WarnSavedLocally,
		}), nil
	}

	session.Replace(events)
	logger.Info("Event added", slog.String("date", event.Date), slog.String("source", string(event.Source)))
	return f.finish(&portssvc.AddEventResult{State: portssvc.StateRender, Ticker: event.Symbol, Event: &event, Durable: session.Durable()}), nil
}

func (f *addEventFlow) finish(res *portssvc.AddEventResult) *portssvc.AddEventResult {
	metrics.FlowRuns.WithLabelValues(string(res.State)).Inc()
	return res
}
