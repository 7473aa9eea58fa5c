package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/dto"
)

type EventsHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockStore  *MockEventStoreService
	mockLookup *MockLookupService
}

func (suite *EventsHandlerTestSuite) SetupTest() {
	suite.mockStore = new(MockEventStoreService)
	suite.mockLookup = new(MockLookupService)
	suite.router = newTestRouter(suite.T(), testConfig(), &portssvc.ServiceContainer{
		EventStore: suite.mockStore,
		Lookup:     suite.mockLookup,
		Health:     new(MockHealthService),
	})
}

func (suite *EventsHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EventsHandlerTestSuite) decodeEvents(w *httptest.ResponseRecorder) []domain.EarningsEvent {
	var events []domain.EarningsEvent
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &events))
	return events
}

func (suite *EventsHandlerTestSuite) TestListEvents_Success() {
	stored := []domain.EarningsEvent{
		{Symbol: "AVGO", Name: "Broadcom Inc.", Date: "2025-09-04", Time: "TBD", Domain: "broadcom.com"},
		{Symbol: "AAPL", Name: "Apple Inc.", Date: "2025-11-05", Time: "TBD", Domain: "apple.com"},
	}
	suite.mockStore.On("LoadAll", mock.Anything).Return(stored, nil).Twice()

	for _, path := range []string{"/events", "/api/events"} {
		w := suite.do(http.MethodGet, path, "")
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Equal(stored, suite.decodeEvents(w))
	}
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestListEvents_StoreFailure() {
	suite.mockStore.On("LoadAll", mock.Anything).Return(nil, fmt.Errorf("%w: 503", apperrors.ErrUpstream)).Once()

	w := suite.do(http.MethodGet, "/events", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to load events"}`, w.Body.String())
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_ValidationErrors() {
	cases := map[string]string{
		"missing symbol": `{"date":"2025-11-05"}`,
		"bad ticker":     `{"symbol":"TOOLONG"}`,
		"digits":         `{"symbol":"AB1"}`,
		"bad date":       `{"symbol":"AAPL","date":"2025-02-30"}`,
		"malformed":      `{"symbol":`,
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/events", body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
		suite.Contains(w.Body.String(), `"error"`, name)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "AppendTo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_WithDateIsManual() {
	suite.mockStore.On("LoadAll", mock.Anything).Return([]domain.EarningsEvent{}, nil).Once()
	written := []domain.EarningsEvent{{Symbol: "AAPL", Name: "AAPL", Date: "2025-11-05", Time: "TBD", Domain: "apple.com", Source: domain.SourceManual}}
	suite.mockStore.On("AppendTo", mock.Anything, mock.Anything, mock.MatchedBy(func(ev domain.EarningsEvent) bool {
		return ev.Symbol == "AAPL" && ev.Date == "2025-11-05" && ev.Source == domain.SourceManual && ev.Domain == "apple.com"
	})).Return(written, nil).Once()

	w := suite.do(http.MethodPost, "/events", `{"symbol":"aapl","date":"2025-11-05"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(written, suite.decodeEvents(w))
	suite.mockLookup.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_LookupFound() {
	suite.mockStore.On("LoadAll", mock.Anything).Return([]domain.EarningsEvent{}, nil).Once()
	suite.mockLookup.On("Lookup", mock.Anything, "NVDA").Return(&domain.EarningsEvent{
		Symbol: "NVDA", Name: "NVDA", Date: "2025-11-19", Time: "After market close", Source: domain.SourceMarketData,
	}, nil).Once()
	suite.mockStore.On("AppendTo", mock.Anything, mock.Anything, mock.MatchedBy(func(ev domain.EarningsEvent) bool {
		return ev.Date == "2025-11-19" && ev.Source == domain.SourceMarketData && ev.Time == "After market close"
	})).Return([]domain.EarningsEvent{{Symbol: "NVDA", Date: "2025-11-19"}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/events", `{"symbol":"NVDA"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLookup.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_LookupNotFoundStoresFallback() {
	suite.mockStore.On("LoadAll", mock.Anything).Return([]domain.EarningsEvent{}, nil).Once()
	suite.mockLookup.On("Lookup", mock.Anything, "ZZZZ").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStore.On("AppendTo", mock.Anything, mock.Anything, mock.MatchedBy(func(ev domain.EarningsEvent) bool {
		return ev.Date == domain.DateTBD && ev.Source == domain.SourceFallback
	})).Return([]domain.EarningsEvent{{Symbol: "ZZZZ", Date: "TBD", Source: domain.SourceFallback}}, nil).Once()

	w := suite.do(http.MethodPost, "/events", `{"symbol":"ZZZZ"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_DuplicateIsNotWritten() {
	stored := []domain.EarningsEvent{{Symbol: "AAPL", Name: "Apple Inc.", Date: "2025-11-05", Time: "TBD", Domain: "apple.com"}}
	suite.mockStore.On("LoadAll", mock.Anything).Return(stored, nil).Once()

	w := suite.do(http.MethodPost, "/events", `{"symbol":"aapl","date":"2026-01-29"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(stored, suite.decodeEvents(w))
	suite.mockStore.AssertNotCalled(suite.T(), "AppendTo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_AppendFailure() {
	suite.mockStore.On("LoadAll", mock.Anything).Return([]domain.EarningsEvent{}, nil).Once()
	suite.mockStore.On("AppendTo", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodPost, "/events", `{"symbol":"AAPL","date":"2025-11-05"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to save event"}`, w.Body.String())
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_AppendsToLoadedList() {
	stored := []domain.EarningsEvent{{Symbol: "AMD", Date: "2025-11-04"}}
	suite.mockStore.On("LoadAll", mock.Anything).Return(stored, nil).Once()
	suite.mockStore.On("AppendTo", mock.Anything, stored, mock.Anything).
		Return(append(stored, domain.EarningsEvent{Symbol: "AAPL", Date: "2025-11-05"}), nil).Once()

	w := suite.do(http.MethodPost, "/events", `{"symbol":"AAPL","date":"2025-11-05"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decodeEvents(w), 2)
	suite.mockStore.AssertNumberOfCalls(suite.T(), "LoadAll", 1)
	suite.mockStore.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_MissingLookupKeyWithoutDate() {
	cfg := testConfig()
	cfg.AlphaVantageKey = ""
	router := newTestRouter(suite.T(), cfg, &portssvc.ServiceContainer{EventStore: suite.mockStore, Lookup: suite.mockLookup})

	req, _ := http.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"symbol":"ZZZ"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "ALPHAVANTAGE_KEY")
	suite.mockLookup.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
	suite.mockStore.AssertNotCalled(suite.T(), "AppendTo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_MissingLookupKeyWithDate() {
	cfg := testConfig()
	cfg.AlphaVantageKey = ""
	router := newTestRouter(suite.T(), cfg, &portssvc.ServiceContainer{EventStore: suite.mockStore, Lookup: suite.mockLookup})
	suite.mockStore.On("LoadAll", mock.Anything).Return([]domain.EarningsEvent{}, nil).Once()
	suite.mockStore.On("AppendTo", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.EarningsEvent{{Symbol: "ZZZ", Date: "2025-12-01"}}, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"symbol":"ZZZ","date":"2025-12-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestCreateEvent_InvalidSource() {
	w := suite.do(http.MethodPost, "/events", `{"symbol":"AAPL","date":"2025-11-05","source":"bogus"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid source")
	suite.mockStore.AssertNotCalled(suite.T(), "LoadAll", mock.Anything)
	suite.mockStore.AssertNotCalled(suite.T(), "AppendTo", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestReplaceEvents_InvalidSource() {
	w := suite.do(http.MethodPut, "/events", `{"events":[{"symbol":"AMD","date":"2025-11-04","source":"scraped"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid source")
	suite.mockStore.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestReplaceEvents_Success() {
	suite.mockStore.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(events []domain.EarningsEvent) bool {
		return len(events) == 2 && events[0].Symbol == "AMD" && events[1].Date == "TBD" && events[1].Domain == "pypl.com"
	})).Return(nil).Once()

	w := suite.do(http.MethodPut, "/events", `{"events":[{"symbol":"AMD","date":"2025-11-04"},{"symbol":"PYPL","date":"TBD","domain":"pypl.com"}]}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReplaceEventsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.OK)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventsHandlerTestSuite) TestReplaceEvents_InvalidElement() {
	w := suite.do(http.MethodPut, "/events", `{"events":[{"symbol":"AMD","date":"soon"}]}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStore.AssertNotCalled(suite.T(), "ReplaceAll", mock.Anything, mock.Anything)
}

func (suite *EventsHandlerTestSuite) TestMethodNotAllowed() {
	for _, method := range []string{http.MethodDelete, http.MethodPatch} {
		w := suite.do(method, "/events", "")
		suite.Equal(http.StatusMethodNotAllowed, w.Code, method)
		suite.Equal("GET, POST, PUT", w.Header().Get("Allow"))
	}
}

func (suite *EventsHandlerTestSuite) TestMissingStoreConfig() {
	cfg := testConfig()
	cfg.JSONBinMasterKey = ""
	router := newTestRouter(suite.T(), cfg, &portssvc.ServiceContainer{EventStore: suite.mockStore, Lookup: suite.mockLookup})

	req, _ := http.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "JSONBin credentials")
	suite.mockStore.AssertNotCalled(suite.T(), "LoadAll", mock.Anything)
}

func TestEventsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventsHandlerTestSuite))
}
