package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/dto"
	"github.com/SscSPs/earnings_calendar_app/internal/middleware"
)

// earningsHandler handles earnings-date lookups.
type earningsHandler struct {
	lookup portssvc.EarningsLookupSvc
}

func registerEarningsRoutes(rg *gin.RouterGroup, lookup portssvc.EarningsLookupSvc, guard, limit gin.HandlerFunc) {
	h := &earningsHandler{lookup: lookup}
	rg.GET("/fetchEarnings", guard, limit, h.fetchEarnings)
	registerMethodNotAllowed(rg, "/fetchEarnings", http.MethodGet)
}

// fetchEarnings godoc
// @Summary Look up the next earnings date
// @Description Queries MarketData.app, then Alpha Vantage, and returns the first usable report date.
// @Tags earnings
// @Produce  json
// @Param   symbol query string true "Ticker, 1-5 letters" example(AAPL)
// @Success 200 {object} dto.FetchEarningsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid symbol"
// @Failure 404 {object} dto.ErrorResponse "Every provider answered without a date"
// @Failure 500 {object} dto.ErrorResponse "Missing API key, or a provider failed and none had a date"
// @Router /fetchEarnings [get]
func (h *earningsHandler) fetchEarnings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.FetchEarningsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing symbol parameter"})
		return
	}

	ticker := domain.NormalizeTicker(query.Symbol)
	if !domain.IsValidTicker(ticker) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticker format (use 1-5 letters, e.g., AAPL)", "ticker": ticker})
		return
	}
	logger = logger.With(slog.String("ticker", ticker))

	event, err := h.lookup.Lookup(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) && !providerFailed(err) {
			logger.Info("No earnings data found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No earnings data found for %s", ticker), "ticker": ticker})
			return
		}
		logger.Error("Earnings lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch earnings data", "ticker": ticker})
		return
	}

	logger.Info("Earnings date found", slog.String("date", event.Date), slog.String("source", string(event.Source)))
	c.JSON(http.StatusOK, dto.ToFetchEarningsResponse(event))
}

// providerFailed reports whether a lookup error carries a provider failure rather than plain "no data".
func providerFailed(err error) bool {
	return errors.Is(err, apperrors.ErrUpstream) || errors.Is(err, apperrors.ErrConfig)
}
