package dto

import "github.com/SscSPs/earnings_calendar_app/internal/core/domain"

// FetchEarningsQuery is the query string of GET /fetchEarnings.
type FetchEarningsQuery struct {
	Symbol string `form:"symbol" binding:"required"`
}

// FetchEarningsResponse is the looked-up next report.
type FetchEarningsResponse struct {
	Symbol       string `json:"symbol" example:"AAPL"`
	NextEarnings string `json:"nextEarnings" example:"2025-10-30"`
	Name         string `json:"name" example:"Apple Inc."`
	Time         string `json:"time" example:"TBD"`
	Source       string `json:"source" example:"MarketData"`
}

// ToFetchEarningsResponse converts a looked-up event.
func ToFetchEarningsResponse(ev *domain.EarningsEvent) FetchEarningsResponse {
	return FetchEarningsResponse{
		Symbol:       ev.Symbol,
		NextEarnings: ev.Date,
		Name:         ev.Name,
		Time:         ev.Time,
		Source:       string(ev.Source),
	}
}

// HealthResponse is the liveness answer.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Time   string `json:"time" example:"2025-11-01T12:00:00Z"`
}
