package services

import "context"

// DependencyStatus reports the reachability of each external collaborator.
type DependencyStatus struct {
	Store        string `json:"store"`
	AlphaVantage string `json:"alphavantage"`
	MarketData   string `json:"marketdata"`
}

// HealthSvc probes external collaborators.
type HealthSvc interface {
	CheckDependencies(ctx context.Context) DependencyStatus
}
