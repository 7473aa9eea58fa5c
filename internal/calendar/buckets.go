package calendar

import (
	"sort"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// Buckets maps an ISO date (or "TBD") to the events reported on it, ordered by symbol.
type Buckets map[string][]domain.EarningsEvent

// BucketEvents groups events by their date string. Events inside a bucket are sorted by symbol.
func BucketEvents(events []domain.EarningsEvent) Buckets {
	b := make(Buckets)
	for _, ev := range events {
		b[ev.Date] = append(b[ev.Date], ev)
	}
	for date := range b {
		bucket := b[date]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Symbol < bucket[j].Symbol
		})
	}
	return b
}

// On returns the events for one ISO date; nil when there are none.
func (b Buckets) On(isoDate string) []domain.EarningsEvent {
	return b[isoDate]
}
