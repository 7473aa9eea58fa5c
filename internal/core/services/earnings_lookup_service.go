package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/metrics"
)

// earningsLookupService walks an ordered provider list and stops at the first usable event.
type earningsLookupService struct {
	BaseService
	providers []portssvc.EarningsProvider
}

// NewEarningsLookupService creates a lookup over providers, queried in the given order.
func NewEarningsLookupService(providers ...portssvc.EarningsProvider) portssvc.EarningsLookupSvc {
	return &earningsLookupService{providers: providers}
}

var _ portssvc.EarningsLookupSvc = (*earningsLookupService)(nil)

func (s *earningsLookupService) Lookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error) {
	ticker = domain.NormalizeTicker(ticker)

	var lastErr error
	for _, p := range s.providers {
		start := time.Now()
		event, err := p.AttemptLookup(ctx, ticker)
		metrics.ProviderLatency.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

		if err != nil {
			lastErr = err
			metrics.ProviderAttempts.WithLabelValues(p.Name(), metrics.OutcomeError).Inc()
			s.LogWarn(ctx, err, "Earnings provider failed, trying next",
				slog.String("provider", p.Name()),
				slog.String("ticker", ticker))
			continue
		}
		if event == nil || !domain.IsISODate(event.Date) {
			metrics.ProviderAttempts.WithLabelValues(p.Name(), metrics.OutcomeNoData).Inc()
			s.LogDebug(ctx, "Earnings provider had no usable date",
				slog.String("provider", p.Name()),
				slog.String("ticker", ticker))
			continue
		}

		metrics.ProviderAttempts.WithLabelValues(p.Name(), metrics.OutcomeFound).Inc()
		found := normalizeProviderEvent(*event, ticker)
		metrics.Lookups.WithLabelValues(metrics.OutcomeFound, string(found.Source)).Inc()
		s.LogInfo(ctx, "Earnings date found",
			slog.String("provider", p.Name()),
			slog.String("ticker", ticker),
			slog.String("date", found.Date))
		return &found, nil
	}

	if lastErr != nil {
		if !errors.Is(lastErr, apperrors.ErrUpstream) && !errors.Is(lastErr, apperrors.ErrConfig) {
			lastErr = fmt.Errorf("%w: %w", apperrors.ErrUpstream, lastErr)
		}
		metrics.Lookups.WithLabelValues(metrics.OutcomeError, "").Inc()
		return nil, fmt.Errorf("%w: no earnings date found for %s: %w", apperrors.ErrNotFound, ticker, lastErr)
	}

	metrics.Lookups.WithLabelValues(metrics.OutcomeNotFound, "").Inc()
	return nil, fmt.Errorf("%w: no earnings date found for %s", apperrors.ErrNotFound, ticker)
}

// normalizeProviderEvent applies the canonical defaults: symbol falls back to the requested
// ticker, time of day to "TBD", name to the symbol, domain to the guess table.
func normalizeProviderEvent(ev domain.EarningsEvent, ticker string) domain.EarningsEvent {
	if domain.NormalizeTicker(ev.Symbol) == "" {
		ev.Symbol = ticker
	}
	return ev.WithDefaults()
}
