package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/dto"
	"github.com/SscSPs/earnings_calendar_app/internal/middleware"
	"github.com/SscSPs/earnings_calendar_app/internal/utils"
)

// eventsHandler handles HTTP requests for the persisted event list.
type eventsHandler struct {
	store        portssvc.EventStoreSvcFacade
	lookup       portssvc.EarningsLookupSvc
	lookupConfig func() error // checked before a dateless create runs the lookup
	posthog      *utils.PosthogClientWrapper
}

// newEventsHandler creates a new eventsHandler.
func newEventsHandler(store portssvc.EventStoreSvcFacade, lookup portssvc.EarningsLookupSvc, lookupConfig func() error, posthog *utils.PosthogClientWrapper) *eventsHandler {
	return &eventsHandler{store: store, lookup: lookup, lookupConfig: lookupConfig, posthog: posthog}
}

// registerEventRoutes registers /events. guard runs before every supported method,
// limit additionally before POST since it may trigger provider lookups.
func registerEventRoutes(rg *gin.RouterGroup, h *eventsHandler, guard, limit gin.HandlerFunc) {
	rg.GET("/events", guard, h.listEvents)
	rg.POST("/events", guard, limit, h.createEvent)
	rg.PUT("/events", guard, h.replaceEvents)
	registerMethodNotAllowed(rg, "/events", http.MethodGet, http.MethodPost, http.MethodPut)
}

// listEvents godoc
// @Summary List stored earnings events
// @Description Returns the persisted event list. Unrecognized stored documents read as an empty list.
// @Tags events
// @Produce  json
// @Success 200 {array} domain.EarningsEvent
// @Failure 500 {object} dto.ErrorResponse "Missing store configuration or store unreachable"
// @Router /events [get]
func (h *eventsHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	events, err := h.store.LoadAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}

	logger.Debug("Events loaded", slog.Int("count", len(events)))
	c.JSON(http.StatusOK, events)
}

// createEvent godoc
// @Summary Add an earnings event
// @Description Appends an event. Without a date the next report date is looked up; when no provider
// @Description has one the event is stored with date "TBD" and source "fallback". A symbol that is
// @Description already stored leaves the list unchanged.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Symbol and optional date, or a full event"
// @Success 200 {array} domain.EarningsEvent "The full list after the append"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid symbol/date"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Missing store or lookup configuration, or store failure"
// @Router /events [post]
func (h *eventsHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	symbol := domain.NormalizeTicker(req.Symbol)
	logger = logger.With(slog.String("symbol", symbol))

	if !req.HasDate() {
		if err := h.lookupConfig(); err != nil {
			logger.Error("Cannot look up a date without provider configuration", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	events, err := h.store.LoadAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load events before append", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	for _, existing := range events {
		if domain.NormalizeTicker(existing.Symbol) == symbol {
			logger.Info("Symbol already stored, nothing written")
			c.JSON(http.StatusOK, events)
			return
		}
	}

	event := req.ToDomain()
	if !req.HasDate() {
		event = h.resolveDate(c, event)
	}

	updated, err := h.store.AppendTo(c.Request.Context(), events, event)
	if err != nil {
		logger.Error("Failed to append event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}

	middleware.PosthogEvent(c, h.posthog, "event_added", map[string]any{
		"symbol": event.Symbol,
		"source": string(event.Source),
	})
	logger.Info("Event stored", slog.String("date", event.Date), slog.String("source", string(event.Source)))
	c.JSON(http.StatusOK, updated)
}

// resolveDate fills the date from the lookup chain, or falls back to TBD.
func (h *eventsHandler) resolveDate(c *gin.Context, event domain.EarningsEvent) domain.EarningsEvent {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	found, err := h.lookup.Lookup(c.Request.Context(), event.Symbol)
	if err != nil {
		if providerFailed(err) || !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Lookup failed, storing fallback date", slog.String("error", err.Error()))
		}
		event.Date = domain.DateTBD
		event.Source = domain.SourceFallback
		return event
	}

	event.Date = found.Date
	event.Source = found.Source
	if event.Name == event.Symbol && found.Name != "" {
		event.Name = found.Name
	}
	if event.Time == domain.TimeTBD && found.Time != "" {
		event.Time = found.Time
	}
	if event.FiscalDateEnding == "" {
		event.FiscalDateEnding = found.FiscalDateEnding
	}
	if event.Estimate == nil {
		event.Estimate = found.Estimate
	}
	if event.Currency == "" {
		event.Currency = found.Currency
	}
	return event
}

// replaceEvents godoc
// @Summary Replace the stored event list
// @Description Overwrites the whole list. Every element needs a valid symbol and a date (YYYY-MM-DD or TBD).
// @Tags events
// @Accept  json
// @Produce  json
// @Param   events body dto.ReplaceEventsRequest true "The new list"
// @Success 200 {object} dto.ReplaceEventsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid list"
// @Failure 500 {object} dto.ErrorResponse "Missing store configuration or store failure"
// @Router /events [put]
func (h *eventsHandler) replaceEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReplaceEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceEvents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": dto.ValidationMessage(err)})
		return
	}

	events := req.ToDomain()
	if err := h.store.ReplaceAll(c.Request.Context(), events); err != nil {
		logger.Error("Failed to replace events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save events"})
		return
	}

	logger.Info("Event list replaced", slog.Int("count", len(events)))
	c.JSON(http.StatusOK, dto.ReplaceEventsResponse{OK: true})
}
