package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// PreloadedWarning is shown when the session falls back to the built-in event list.
const PreloadedWarning = "Using preloaded events (backend unavailable)"

// EventLoader is the part of the event store a session needs to initialize itself.
type EventLoader interface {
	LoadAll(ctx context.Context) ([]domain.EarningsEvent, error)
}

// Session is the explicit event-list handle one client works with: a single page render or a
// single CLI run. Lifecycle is load, then append/replace; there is no teardown.
// A Session is not safe for concurrent use.
type Session struct {
	events   []domain.EarningsEvent
	warnings []string
	durable  bool
}

// NewSession creates a session over events, which are assumed to reflect the store.
func NewSession(events []domain.EarningsEvent) *Session {
	s := &Session{durable: true}
	s.Replace(events)
	return s
}

// LoadSession initializes a session from loader. When loading fails the session holds the
// preloaded events and carries PreloadedWarning.
func LoadSession(ctx context.Context, loader EventLoader, logger *slog.Logger) *Session {
	events, err := loader.LoadAll(ctx)
	if err != nil {
		logger.Warn("Falling back to preloaded events", slog.String("error", err.Error()))
		s := &Session{events: domain.PreloadedEvents()}
		s.Warn(PreloadedWarning)
		return s
	}
	return NewSession(events)
}

// Events returns a copy of the current list.
func (s *Session) Events() []domain.EarningsEvent {
	out := make([]domain.EarningsEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Replace swaps in the list returned by the store after a successful write.
func (s *Session) Replace(events []domain.EarningsEvent) {
	s.events = make([]domain.EarningsEvent, len(events))
	copy(s.events, events)
}

// AddLocal keeps ev only in this session. The session is no longer a faithful copy of the store.
func (s *Session) AddLocal(ev domain.EarningsEvent) {
	s.events = append(s.events, ev)
	s.durable = false
}

// Durable reports whether every event in the session is known to be persisted.
func (s *Session) Durable() bool {
	return s.durable
}

// Warn records a non-fatal, user-visible warning.
func (s *Session) Warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

// Warnings returns the warnings recorded so far.
func (s *Session) Warnings() []string {
	return s.warnings
}

// Buckets groups the session's events for rendering.
func (s *Session) Buckets() Buckets {
	return BucketEvents(s.events)
}

// FindSymbol returns the first event whose symbol matches case-insensitively.
func (s *Session) FindSymbol(symbol string) (domain.EarningsEvent, bool) {
	want := domain.NormalizeTicker(symbol)
	for _, ev := range s.events {
		if domain.NormalizeTicker(ev.Symbol) == want {
			return ev, true
		}
	}
	return domain.EarningsEvent{}, false
}

// EarliestMonth returns the month of the smallest valid ISO date in the session.
func (s *Session) EarliestMonth(loc *time.Location) (time.Time, bool) {
	earliest := ""
	for _, ev := range s.events {
		if !domain.IsISODate(ev.Date) {
			continue
		}
		if earliest == "" || ev.Date < earliest {
			earliest = ev.Date
		}
	}
	if earliest == "" {
		return time.Time{}, false
	}
	t, err := domain.ParseISODate(earliest, loc)
	if err != nil {
		return time.Time{}, false
	}
	return StartOfMonth(t), true
}
