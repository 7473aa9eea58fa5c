package services

import (
	"context"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// EventStoreReaderSvc defines read operations over the persisted event list
type EventStoreReaderSvc interface {
	// LoadAll returns every stored event. Unknown document shapes yield an empty list, not an error.
	LoadAll(ctx context.Context) ([]domain.EarningsEvent, error)

	// FindBySymbol returns the stored event whose symbol matches case-insensitively,
	// or apperrors.ErrNotFound.
	FindBySymbol(ctx context.Context, symbol string) (*domain.EarningsEvent, error)
}

// EventStoreWriterSvc defines write operations over the persisted event list
type EventStoreWriterSvc interface {
	// Append reads the list, adds event, sorts by date string and writes the full list back.
	// It returns the list that was written. Concurrent appends race: the last full write wins.
	Append(ctx context.Context, event domain.EarningsEvent) ([]domain.EarningsEvent, error)

	// AppendTo adds event to a list the caller already loaded and writes it without re-reading.
	// The caller's slice is not modified.
	AppendTo(ctx context.Context, loaded []domain.EarningsEvent, event domain.EarningsEvent) ([]domain.EarningsEvent, error)

	// ReplaceAll overwrites the stored list.
	ReplaceAll(ctx context.Context, events []domain.EarningsEvent) error
}

// EventStoreSvcFacade combines all event store service interfaces
type EventStoreSvcFacade interface {
	EventStoreReaderSvc
	EventStoreWriterSvc
}
