package alphavantage_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/earnings_calendar_app/internal/adapters/providers/alphavantage"
	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "symbol,name,reportDate,fiscalDateEnding,estimate,currency\r\n"

func serve(t *testing.T, status int, body string) *alphavantage.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "EARNINGS_CALENDAR", r.URL.Query().Get("function"))
		assert.Equal(t, "3month", r.URL.Query().Get("horizon"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return alphavantage.NewClient("test-key", alphavantage.WithBaseURL(srv.URL))
}

func TestAttemptLookup_ParsesFirstRow(t *testing.T) {
	client := serve(t, http.StatusOK, csvHeader+
		"MSFT,Microsoft Corporation,2025-10-28,2025-09-30,3.08,USD\r\n"+
		"MSFT,Microsoft Corporation,2026-01-27,2025-12-31,3.35,USD\r\n")

	ev, err := client.AttemptLookup(context.Background(), "msft")

	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "MSFT", ev.Symbol)
	assert.Equal(t, "Microsoft Corporation", ev.Name)
	assert.Equal(t, "2025-10-28", ev.Date)
	assert.Equal(t, domain.TimeTBD, ev.Time)
	assert.Equal(t, "2025-09-30", ev.FiscalDateEnding)
	assert.Equal(t, "USD", ev.Currency)
	require.NotNil(t, ev.Estimate)
	assert.Equal(t, "3.08", ev.Estimate.String())
	assert.Equal(t, domain.SourceAlphaVantage, ev.Source)
}

func TestAttemptLookup_NoData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"header only", csvHeader},
		{"empty body", ""},
		{"None report date", csvHeader + "XYZ,Xyz Corp,None,None,None,USD\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := serve(t, http.StatusOK, tt.body).AttemptLookup(context.Background(), "XYZ")
			assert.NoError(t, err)
			assert.Nil(t, ev)
		})
	}
}

func TestAttemptLookup_EstimateNone(t *testing.T) {
	ev, err := serve(t, http.StatusOK, csvHeader+"AGO,Assured Guaranty Ltd,2025-11-10,2025-09-30,,USD\r\n").
		AttemptLookup(context.Background(), "AGO")

	require.NoError(t, err)
	assert.Nil(t, ev.Estimate)
}

func TestAttemptLookup_Notices(t *testing.T) {
	t.Run("error message", func(t *testing.T) {
		_, err := serve(t, http.StatusOK, `{"Error Message": "Invalid API call."}`).AttemptLookup(context.Background(), "AAPL")
		var apiErr *alphavantage.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.ErrorIs(t, err, apperrors.ErrUpstream)
	})

	t.Run("premium note", func(t *testing.T) {
		_, err := serve(t, http.StatusOK, `{"Note": "Thank you for using Alpha Vantage! Please subscribe to any of the premium plans"}`).
			AttemptLookup(context.Background(), "AAPL")
		var rlErr *alphavantage.RateLimitError
		assert.True(t, errors.As(err, &rlErr))
	})

	t.Run("information", func(t *testing.T) {
		_, err := serve(t, http.StatusOK, `{"Information": "API rate limit is 25 requests per day."}`).
			AttemptLookup(context.Background(), "AAPL")
		var rlErr *alphavantage.RateLimitError
		assert.True(t, errors.As(err, &rlErr))
	})

	t.Run("http status", func(t *testing.T) {
		_, err := serve(t, http.StatusBadGateway, "bad gateway").AttemptLookup(context.Background(), "AAPL")
		var apiErr *alphavantage.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})
}

func TestMissingKey(t *testing.T) {
	client := alphavantage.NewClient("")

	_, err := client.AttemptLookup(context.Background(), "AAPL")
	assert.ErrorIs(t, err, apperrors.ErrConfig)
	assert.ErrorIs(t, client.Ping(context.Background()), apperrors.ErrConfig)
}

func TestPing(t *testing.T) {
	assert.NoError(t, serve(t, http.StatusOK, csvHeader+"AAPL,Apple Inc,2025-10-30,2025-09-30,1.77,USD\r\n").Ping(context.Background()))
}
