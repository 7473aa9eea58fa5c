package services_test

import (
	"context"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock EventDocumentRepository ---
type MockEventDocumentRepository struct {
	mock.Mock
}

func (m *MockEventDocumentRepository) ReadDocument(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockEventDocumentRepository) WriteDocument(ctx context.Context, events []domain.EarningsEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockPingableRepository also implements the health check probe.
type MockPingableRepository struct {
	MockEventDocumentRepository
}

func (m *MockPingableRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock EarningsProvider ---
type MockProvider struct {
	mock.Mock
	name string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{name: name}
}

func (m *MockProvider) Name() string { return m.name }

func (m *MockProvider) AttemptLookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsEvent), args.Error(1)
}

// --- Mock EarningsLookupSvc ---
type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) Lookup(ctx context.Context, ticker string) (*domain.EarningsEvent, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EarningsEvent), args.Error(1)
}

// --- Mock EventStoreWriterSvc ---
type MockStoreWriter struct {
	mock.Mock
}

func (m *MockStoreWriter) Append(ctx context.Context, event domain.EarningsEvent) ([]domain.EarningsEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarningsEvent), args.Error(1)
}

func (m *MockStoreWriter) AppendTo(ctx context.Context, loaded []domain.EarningsEvent, event domain.EarningsEvent) ([]domain.EarningsEvent, error) {
	args := m.Called(ctx, loaded, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarningsEvent), args.Error(1)
}

func (m *MockStoreWriter) ReplaceAll(ctx context.Context, events []domain.EarningsEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// stubPrompter answers the manual-entry prompt with a fixed reply.
type stubPrompter struct {
	date    string
	entered bool
	err     error
	calls   int
}

func (p *stubPrompter) PromptManualDate(_ context.Context, _ string) (string, bool, error) {
	p.calls++
	return p.date, p.entered, p.err
}
