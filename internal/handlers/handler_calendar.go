package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/middleware"
	"github.com/SscSPs/earnings_calendar_app/internal/utils"
)

// calendarHandler serves the server-rendered month view and its add form.
type calendarHandler struct {
	store    calendar.EventLoader
	flow     portssvc.AddEventFlowSvc
	renderer *calendar.Renderer
	now      func() time.Time
	loc      *time.Location
	posthog  *utils.PosthogClientWrapper
}

func registerCalendarRoutes(r gin.IRoutes, h *calendarHandler, limit gin.HandlerFunc) {
	r.GET("/", h.showCalendar)
	r.GET("/calendar", h.showCalendar)
	r.POST("/calendar/add", limit, h.addFromForm)
}

// showCalendar godoc
// @Summary Calendar page
// @Description Renders one month. Without ?month= the month of the earliest stored event is shown.
// @Tags calendar
// @Produce html
// @Param   month query string false "Month to show, YYYY-MM" example(2025-11)
// @Success 200 {string} string "HTML page"
// @Router /calendar [get]
func (h *calendarHandler) showCalendar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session := calendar.LoadSession(c.Request.Context(), h.store, logger)

	view := calendar.PageView{}
	month, err := h.requestedMonth(c, session)
	if err != nil {
		logger.Warn("Invalid month parameter", slog.String("month", c.Query("month")))
		view.Error = fmt.Sprintf("Invalid month %q (use YYYY-MM)", c.Query("month"))
	}
	h.render(c, session, month, view)
}

// addFromForm godoc
// @Summary Add a ticker from the calendar page
// @Description Looks the ticker up and re-renders the page. When no provider has a date the page asks for one;
// @Description submitting the date (or cancel) posts back here and skips the lookup.
// @Tags calendar
// @Accept x-www-form-urlencoded
// @Produce html
// @Param   ticker formData string true "Ticker"
// @Param   date formData string false "Manually entered date, YYYY-MM-DD"
// @Param   cancel formData string false "Set to abandon manual entry"
// @Param   month query string false "Month being viewed, YYYY-MM"
// @Success 200 {string} string "HTML page"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /calendar/add [post]
func (h *calendarHandler) addFromForm(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	session := calendar.LoadSession(ctx, h.store, logger)

	prompter := formPrompter{date: c.PostForm("date"), cancelled: c.PostForm("cancel") != ""}
	month, monthErr := h.requestedMonth(c, session)
	view := calendar.PageView{}

	run := h.flow.Run
	if prompter.submitted() {
		run = h.flow.RunManual
	}
	result, err := run(ctx, session, c.PostForm("ticker"), prompter)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Add event flow failed", slog.String("error", err.Error()))
			view.Error = "Could not add ticker"
		} else {
			view.Error = strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")
			if ticker := domain.NormalizeTicker(c.PostForm("ticker")); prompter.date != "" && domain.IsValidTicker(ticker) {
				view.Prompt = &calendar.ManualPrompt{Ticker: ticker}
			}
		}
		h.render(c, session, month, view)
		return
	}

	switch result.State {
	case portssvc.StateExisting:
		view.Notice = fmt.Sprintf("%s is already on the calendar", result.Ticker)
		month = monthOfEvent(result.Event, month, h.loc)
	case portssvc.StatePromptManual:
		view.Prompt = &calendar.ManualPrompt{Ticker: result.Ticker}
	case portssvc.StateAbort:
		session.Warn(result.Warning)
	case portssvc.StateRender:
		view.Notice = fmt.Sprintf("Added %s (%s)", result.Ticker, result.Event.Date)
		month = monthOfEvent(result.Event, month, h.loc)
		middleware.PosthogEvent(c, h.posthog, "calendar_event_added", map[string]any{
			"symbol":  result.Ticker,
			"source":  string(result.Event.Source),
			"durable": result.Durable,
		})
	}
	if monthErr != nil && view.Error == "" {
		view.Error = fmt.Sprintf("Invalid month %q (use YYYY-MM)", c.Query("month"))
	}
	h.render(c, session, month, view)
}

// requestedMonth returns the ?month= value, else the earliest event's month, else the current month.
// A malformed value yields the default month together with the parse error.
func (h *calendarHandler) requestedMonth(c *gin.Context, session *calendar.Session) (time.Time, error) {
	var parseErr error
	if raw := c.Query("month"); raw != "" {
		month, err := calendar.ParseMonth(raw, h.loc)
		if err == nil {
			return month, nil
		}
		parseErr = err
	}
	if earliest, ok := session.EarliestMonth(h.loc); ok {
		return earliest, parseErr
	}
	return calendar.CurrentMonth(h.now().In(h.loc)), parseErr
}

func (h *calendarHandler) render(c *gin.Context, session *calendar.Session, month time.Time, view calendar.PageView) {
	today := h.now().In(h.loc)
	view.Grid = h.renderer.Render(month, session.Buckets(), today)
	view.Month = calendar.FormatMonthParam(month)
	view.PrevMonth = calendar.FormatMonthParam(calendar.PrevMonth(month))
	view.NextMonth = calendar.FormatMonthParam(calendar.NextMonth(month))
	view.TodayMonth = calendar.FormatMonthParam(calendar.CurrentMonth(today))
	view.Warnings = session.Warnings()
	c.HTML(http.StatusOK, calendar.PageTemplateName, view)
}

// monthOfEvent jumps the view to the event's month when it has a real date.
func monthOfEvent(ev *domain.EarningsEvent, fallback time.Time, loc *time.Location) time.Time {
	if ev == nil || !domain.IsISODate(ev.Date) {
		return fallback
	}
	t, err := domain.ParseISODate(ev.Date, loc)
	if err != nil {
		return fallback
	}
	return calendar.StartOfMonth(t)
}

// formPrompter answers the manual-entry question from the submitted form.
// Without a date the page has to ask first, so the flow is deferred.
type formPrompter struct {
	date      string
	cancelled bool
}

func (p formPrompter) PromptManualDate(_ context.Context, _ string) (string, bool, error) {
	if p.cancelled {
		return "", false, nil
	}
	if strings.TrimSpace(p.date) == "" {
		return "", false, portssvc.ErrManualEntryDeferred
	}
	return p.date, true, nil
}

// submitted reports whether the form already answers the prompt (a date or cancel).
func (p formPrompter) submitted() bool {
	return p.cancelled || strings.TrimSpace(p.date) != ""
}
