package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

// CreateEventRequest is the body of POST /events: either {symbol, date?} or a full event.
type CreateEventRequest struct {
	Symbol           string           `json:"symbol" binding:"required,ticker" example:"AAPL"`
	Name             string           `json:"name,omitempty" example:"Apple Inc."`
	Date             string           `json:"date,omitempty" binding:"omitempty,eventdate" example:"2025-11-05"`
	Time             string           `json:"time,omitempty" example:"After market close"`
	Domain           string           `json:"domain,omitempty" example:"apple.com"`
	Source           string           `json:"source,omitempty" binding:"omitempty,eventsource" example:"manual"`
	FiscalDateEnding string           `json:"fiscalDateEnding,omitempty"`
	Estimate         *decimal.Decimal `json:"estimate,omitempty" swaggertype:"string"`
	Currency         string           `json:"currency,omitempty"`
}

// HasDate reports whether the caller supplied a date, which skips the lookup.
func (r CreateEventRequest) HasDate() bool {
	return r.Date != ""
}

// ToDomain converts the request into a stored event. A supplied date without a source is manual.
func (r CreateEventRequest) ToDomain() domain.EarningsEvent {
	ev := domain.EarningsEvent{
		Symbol:           r.Symbol,
		Name:             r.Name,
		Date:             r.Date,
		Time:             r.Time,
		Domain:           r.Domain,
		Source:           domain.Source(r.Source),
		FiscalDateEnding: r.FiscalDateEnding,
		Estimate:         r.Estimate,
		Currency:         r.Currency,
	}
	if ev.Source == "" && ev.Date != "" {
		ev.Source = domain.SourceManual
	}
	return ev.WithDefaults()
}

// EventPayload is one element of a full-replace request.
type EventPayload struct {
	Symbol           string           `json:"symbol" binding:"required,ticker"`
	Name             string           `json:"name,omitempty"`
	Date             string           `json:"date" binding:"required,eventdate"`
	Time             string           `json:"time,omitempty"`
	Domain           string           `json:"domain,omitempty"`
	Source           string           `json:"source,omitempty" binding:"omitempty,eventsource"`
	FiscalDateEnding string           `json:"fiscalDateEnding,omitempty"`
	Estimate         *decimal.Decimal `json:"estimate,omitempty" swaggertype:"string"`
	Currency         string           `json:"currency,omitempty"`
}

// ReplaceEventsRequest is the body of PUT /events.
type ReplaceEventsRequest struct {
	Events []EventPayload `json:"events" binding:"required,dive"`
}

// ToDomain converts every payload, applying the same defaults as a single create.
func (r ReplaceEventsRequest) ToDomain() []domain.EarningsEvent {
	events := make([]domain.EarningsEvent, len(r.Events))
	for i, p := range r.Events {
		events[i] = domain.EarningsEvent{
			Symbol:           p.Symbol,
			Name:             p.Name,
			Date:             p.Date,
			Time:             p.Time,
			Domain:           p.Domain,
			Source:           domain.Source(p.Source),
			FiscalDateEnding: p.FiscalDateEnding,
			Estimate:         p.Estimate,
			Currency:         p.Currency,
		}.WithDefaults()
	}
	return events
}

// ReplaceEventsResponse acknowledges a full replace.
type ReplaceEventsResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error  string `json:"error" example:"Missing symbol parameter"`
	Ticker string `json:"ticker,omitempty" example:"ZZZZ"`
}
