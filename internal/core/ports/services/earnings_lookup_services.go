package services

import (
	"context"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// EarningsProvider is one external source of earnings dates.
type EarningsProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// AttemptLookup returns (nil, nil) when the provider answered but had no usable date.
	// Errors describe transport, status or payload failures; callers treat both as "try the next one".
	AttemptLookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error)
}

// EarningsLookupSvc resolves a ticker to its next earnings event.
type EarningsLookupSvc interface {
	// Lookup queries providers in priority order and returns the first usable event,
	// or apperrors.ErrNotFound when none had one. When a provider failed on the way, the
	// NotFound error also wraps the last failure as apperrors.ErrUpstream or apperrors.ErrConfig.
	Lookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error)
}
