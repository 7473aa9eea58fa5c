package repositories

import (
	"context"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// EventDocumentReader defines read operations for the persisted event document
type EventDocumentReader interface {
	// ReadDocument returns the raw persisted document exactly as the backing store holds it.
	// A store that has never been written returns an empty slice and no error.
	ReadDocument(ctx context.Context) ([]byte, error)
}

// EventDocumentWriter defines write operations for the persisted event document
type EventDocumentWriter interface {
	// WriteDocument overwrites the whole document with events, encoded as a bare JSON array.
	WriteDocument(ctx context.Context, events []domain.EarningsEvent) error
}

// EventDocumentRepositoryFacade combines all event-document repository interfaces
type EventDocumentRepositoryFacade interface {
	EventDocumentReader
	EventDocumentWriter
}

// HealthChecker is implemented by backing stores that can be probed without reading the document.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
