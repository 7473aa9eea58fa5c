package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/handlers"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/config"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// --- Mock EventStoreService ---
type MockEventStoreService struct {
	mock.Mock
}

func (m *MockEventStoreService) LoadAll(ctx context.Context) ([]domain.EarningsEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarningsEvent), args.Error(1)
}

func (m *MockEventStoreService) FindBySymbol(ctx context.Context, symbol string) (*domain.EarningsEvent, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsEvent), args.Error(1)
}

func (m *MockEventStoreService) Append(ctx context.Context, event domain.EarningsEvent) ([]domain.EarningsEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarningsEvent), args.Error(1)
}

func (m *MockEventStoreService) AppendTo(ctx context.Context, loaded []domain.EarningsEvent, event domain.EarningsEvent) ([]domain.EarningsEvent, error) {
	args := m.Called(ctx, loaded, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarningsEvent), args.Error(1)
}

func (m *MockEventStoreService) ReplaceAll(ctx context.Context, events []domain.EarningsEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

var _ portssvc.EventStoreSvcFacade = (*MockEventStoreService)(nil)

// --- Mock EarningsLookupSvc ---
type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Lookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsEvent), args.Error(1)
}

var _ portssvc.EarningsLookupSvc = (*MockLookupService)(nil)

// --- Mock HealthSvc ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckDependencies(ctx context.Context) portssvc.DependencyStatus {
	args := m.Called(ctx)
	return args.Get(0).(portssvc.DependencyStatus)
}

var _ portssvc.HealthSvc = (*MockHealthService)(nil)

// fixedNow is 2025-11-10 12:00 UTC.
var fixedNow = time.Date(2025, time.November, 10, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		StoreBackend:     config.StoreBackendJSONBin,
		JSONBinBinID:     "bin",
		JSONBinMasterKey: "key",
		AlphaVantageKey:  "demo",
		LogoBaseURL:      "https://logo.example.com",
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, container *portssvc.ServiceContainer, opts ...handlers.RouteOption) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	opts = append([]handlers.RouteOption{handlers.WithClock(func() time.Time { return fixedNow }, time.UTC)}, opts...)
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container, opts...))
	return r
}
