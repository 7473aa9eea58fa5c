package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/earnings_calendar_app/internal/adapters/providers/alphavantage"
	"github.com/SscSPs/earnings_calendar_app/internal/adapters/providers/marketdata"
	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/core/services"
	"github.com/SscSPs/earnings_calendar_app/internal/handlers"
	"github.com/SscSPs/earnings_calendar_app/internal/middleware"
)

type EarningsHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLookup *MockLookupService
}

func (suite *EarningsHandlerTestSuite) SetupTest() {
	suite.mockLookup = new(MockLookupService)
	suite.router = newTestRouter(suite.T(), testConfig(), &portssvc.ServiceContainer{
		EventStore: new(MockEventStoreService),
		Lookup:     suite.mockLookup,
	})
}

func (suite *EarningsHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_Success() {
	suite.mockLookup.On("Lookup", mock.Anything, "AAPL").Return(&domain.EarningsEvent{
		Symbol: "AAPL", Name: "AAPL", Date: "2025-10-30", Time: "TBD", Source: domain.SourceMarketData,
	}, nil).Once()

	w := suite.get("/fetchEarnings?symbol=aapl")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"symbol":"AAPL","nextEarnings":"2025-10-30","name":"AAPL","time":"TBD","source":"MarketData"}`, w.Body.String())
	suite.mockLookup.AssertExpectations(suite.T())
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_MissingSymbol() {
	w := suite.get("/fetchEarnings")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Missing symbol parameter"}`, w.Body.String())
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_InvalidTicker() {
	w := suite.get("/api/fetchEarnings?symbol=BRK.B")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLookup.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_NotFound() {
	suite.mockLookup.On("Lookup", mock.Anything, "ZZZZ").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/fetchEarnings?symbol=ZZZZ")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"No earnings data found for ZZZZ","ticker":"ZZZZ"}`, w.Body.String())
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_UnexpectedError() {
	suite.mockLookup.On("Lookup", mock.Anything, "AAPL").Return(nil, errors.New("context canceled")).Once()

	w := suite.get("/fetchEarnings?symbol=AAPL")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_MethodNotAllowed() {
	req, _ := http.NewRequest(http.MethodPost, "/fetchEarnings?symbol=AAPL", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusMethodNotAllowed, w.Code)
	suite.Equal("GET", w.Header().Get("Allow"))
}

func (suite *EarningsHandlerTestSuite) TestFetchEarnings_MissingAPIKey() {
	cfg := testConfig()
	cfg.AlphaVantageKey = ""
	suite.router = newTestRouter(suite.T(), cfg, &portssvc.ServiceContainer{Lookup: suite.mockLookup})

	w := suite.get("/fetchEarnings?symbol=AAPL")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "ALPHAVANTAGE_KEY")
	suite.mockLookup.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
}

func TestEarningsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EarningsHandlerTestSuite))
}

func TestFetchEarnings_RateLimited(t *testing.T) {
	l, err := middleware.NewLimiter("1-M", nil)
	require.NoError(t, err)

	lookup := new(MockLookupService)
	lookup.On("Lookup", mock.Anything, "AAPL").Return(nil, apperrors.ErrNotFound).Once()
	router := newTestRouter(t, testConfig(), &portssvc.ServiceContainer{Lookup: lookup}, handlers.WithRateLimiter(l))

	codes := make([]int, 0, 2)
	for range 2 {
		req, _ := http.NewRequest(http.MethodGet, "/fetchEarnings?symbol=AAPL", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	require.Equal(t, []int{http.StatusNotFound, http.StatusTooManyRequests}, codes)
	lookup.AssertExpectations(t)
}

// fetchWithProviders serves /fetchEarnings through the real lookup chain over fake provider APIs.
func fetchWithProviders(t *testing.T, marketDataAPI, alphaVantageAPI http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	md := httptest.NewServer(marketDataAPI)
	t.Cleanup(md.Close)
	av := httptest.NewServer(alphaVantageAPI)
	t.Cleanup(av.Close)

	lookup := services.NewEarningsLookupService(
		marketdata.NewClient(marketdata.WithBaseURL(md.URL), marketdata.WithLocation(time.UTC)),
		alphavantage.NewClient("demo", alphavantage.WithBaseURL(av.URL)),
	)
	router := newTestRouter(t, testConfig(), &portssvc.ServiceContainer{Lookup: lookup})

	req, _ := http.NewRequest(http.MethodGet, "/fetchEarnings?symbol=AAPL", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFetchEarnings_ProvidersFailingIsServerError(t *testing.T) {
	w := fetchWithProviders(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"Note":"Thank you for using Alpha Vantage! Please subscribe to any of the premium plans."}`))
		},
	)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Failed to fetch earnings data","ticker":"AAPL"}`, w.Body.String())
}

func TestFetchEarnings_ProvidersWithoutDataIsNotFound(t *testing.T) {
	w := fetchWithProviders(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		},
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("symbol,name,reportDate,fiscalDateEnding,estimate,currency\n"))
		},
	)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "No earnings data found for AAPL")
}
