package services

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
)

// Dependency status values reported by /health/dependencies.
const (
	StatusOK            = "ok"
	StatusFailed        = "failed"
	StatusUnexpected    = "unexpected" // reachable, but answered with something other than data
	StatusNotConfigured = "not_configured"
)

const probeTimeout = 5 * time.Second

type healthService struct {
	BaseService
	store     portsrepo.EventDocumentReader
	providers []portssvc.EarningsProvider
}

// NewHealthService creates a probe over the document store and every provider.
// A nil store reports not_configured.
func NewHealthService(store portsrepo.EventDocumentReader, providers ...portssvc.EarningsProvider) portssvc.HealthSvc {
	return &healthService{store: store, providers: providers}
}

func (s *healthService) CheckDependencies(ctx context.Context) portssvc.DependencyStatus {
	status := portssvc.DependencyStatus{
		Store:        StatusNotConfigured,
		AlphaVantage: StatusNotConfigured,
		MarketData:   StatusNotConfigured,
	}

	if s.store != nil {
		status.Store = s.probeStore(ctx)
	}

	for _, p := range s.providers {
		result := StatusOK
		if checker, ok := p.(portsrepo.HealthChecker); ok {
			result = s.probe(ctx, p.Name(), checker.Ping)
		}
		switch domain.Source(p.Name()) {
		case domain.SourceAlphaVantage:
			status.AlphaVantage = result
		case domain.SourceMarketData:
			status.MarketData = result
		}
	}
	return status
}

func (s *healthService) probeStore(ctx context.Context) string {
	if checker, ok := s.store.(portsrepo.HealthChecker); ok {
		return s.probe(ctx, "store", checker.Ping)
	}
	return s.probe(ctx, "store", func(ctx context.Context) error {
		_, err := s.store.ReadDocument(ctx)
		return err
	})
}

func (s *healthService) probe(ctx context.Context, name string, fn func(context.Context) error) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	err := fn(ctx)
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, apperrors.ErrConfig):
		return StatusNotConfigured
	case errors.Is(err, apperrors.ErrUpstream):
		s.LogWarn(ctx, err, "Dependency answered unexpectedly", "dependency", name)
		return StatusUnexpected
	default:
		s.LogWarn(ctx, err, "Dependency probe failed", "dependency", name)
		return StatusFailed
	}
}
