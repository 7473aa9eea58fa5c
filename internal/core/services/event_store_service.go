package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/metrics"
)

// eventStoreService proxies the remote event document. It keeps no state between calls:
// every Append is a fresh read-modify-write with no conflict detection.
type eventStoreService struct {
	BaseService
	repo portsrepo.EventDocumentRepositoryFacade
}

// NewEventStoreService creates the event store proxy over repo.
func NewEventStoreService(repo portsrepo.EventDocumentRepositoryFacade) portssvc.EventStoreSvcFacade {
	return &eventStoreService{repo: repo}
}

var _ portssvc.EventStoreSvcFacade = (*eventStoreService)(nil)

func (s *eventStoreService) LoadAll(ctx context.Context) ([]domain.EarningsEvent, error) {
	start := time.Now()
	raw, err := s.repo.ReadDocument(ctx)
	observeStore("read", start, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to read event document")
		return nil, fmt.Errorf("%w: failed to load events: %w", apperrors.ErrUpstream, err)
	}

	doc := domain.NormalizeEventDocument(raw)
	if doc.Shape == domain.ShapeInvalid && len(raw) > 0 {
		s.LogDebug(ctx, "Event document has an unrecognized shape, treating as empty", slog.Int("bytes", len(raw)))
	}
	return doc.Events, nil
}

func (s *eventStoreService) FindBySymbol(ctx context.Context, symbol string) (*domain.EarningsEvent, error) {
	events, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	want := domain.NormalizeTicker(symbol)
	for i := range events {
		if domain.NormalizeTicker(events[i].Symbol) == want {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no event for symbol %s", apperrors.ErrNotFound, want)
}

func (s *eventStoreService) Append(ctx context.Context, event domain.EarningsEvent) ([]domain.EarningsEvent, error) {
	events, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.AppendTo(ctx, events, event)
}

func (s *eventStoreService) AppendTo(ctx context.Context, loaded []domain.EarningsEvent, event domain.EarningsEvent) ([]domain.EarningsEvent, error) {
	events := make([]domain.EarningsEvent, 0, len(loaded)+1)
	events = append(events, loaded...)
	events = append(events, event)
	SortByDate(events)

	if err := s.write(ctx, events); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Event appended",
		slog.String("symbol", event.Symbol),
		slog.String("date", event.Date),
		slog.Int("count", len(events)))
	return events, nil
}

func (s *eventStoreService) ReplaceAll(ctx context.Context, events []domain.EarningsEvent) error {
	if events == nil {
		events = []domain.EarningsEvent{}
	}
	if err := s.write(ctx, events); err != nil {
		return err
	}
	s.LogInfo(ctx, "Event list replaced", slog.Int("count", len(events)))
	return nil
}

func (s *eventStoreService) write(ctx context.Context, events []domain.EarningsEvent) error {
	start := time.Now()
	err := s.repo.WriteDocument(ctx, events)
	observeStore("write", start, err)
	if err != nil {
		s.LogError(ctx, err, "Failed to write event document", slog.Int("count", len(events)))
		return fmt.Errorf("%w: failed to save events: %w", apperrors.ErrUpstream, err)
	}
	return nil
}

// SortByDate orders events ascending by their date string. "TBD" sorts by its literal value.
func SortByDate(events []domain.EarningsEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

func observeStore(op string, start time.Time, err error) {
	status := metrics.OutcomeSuccess
	if err != nil {
		status = metrics.OutcomeError
	}
	metrics.StoreOperations.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
}
