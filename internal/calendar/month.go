package calendar

import (
	"fmt"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
)

const (
	// DaysPerWeek is the number of columns in the grid.
	DaysPerWeek = 7
	// WeeksShown is the number of rows in the grid.
	WeeksShown = 6
	// CellCount is the fixed number of day cells in every rendered month.
	CellCount = DaysPerWeek * WeeksShown

	monthParamLayout = "2006-01"
	monthLabelLayout = "January 2006"
)

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// GridStart returns the Sunday on or before the first day of month.
func GridStart(month time.Time) time.Time {
	first := StartOfMonth(month)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// NextMonth advances by exactly one calendar month.
func NextMonth(month time.Time) time.Time {
	first := StartOfMonth(month)
	return time.Date(first.Year(), first.Month()+1, 1, 0, 0, 0, 0, first.Location())
}

// PrevMonth retreats by exactly one calendar month.
func PrevMonth(month time.Time) time.Time {
	first := StartOfMonth(month)
	return time.Date(first.Year(), first.Month()-1, 1, 0, 0, 0, 0, first.Location())
}

// CurrentMonth returns the month containing now.
func CurrentMonth(now time.Time) time.Time {
	return StartOfMonth(now)
}

// ParseMonth parses a "YYYY-MM" navigation parameter.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(monthParamLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return t, nil
}

// FormatMonthParam renders month as a "YYYY-MM" navigation parameter.
func FormatMonthParam(month time.Time) string {
	return month.Format(monthParamLayout)
}

// Cell is one day of the grid.
type Cell struct {
	Date    time.Time
	ISODate string
	Day     int
	InMonth bool // false for the dimmed leading/trailing days
	IsToday bool
	Events  []EventView
}

// EventView is an event prepared for display inside a cell.
type EventView struct {
	domain.EarningsEvent
	LogoURL  string
	BadgeURI string
	Tooltip  string
}

// MonthGrid is a full 6-week rendering of one month.
type MonthGrid struct {
	Month time.Time
	Label string
	Cells []Cell
}

// Weeks splits the cells into rows of seven, Sunday first.
func (g MonthGrid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, WeeksShown)
	for i := 0; i+DaysPerWeek <= len(g.Cells); i += DaysPerWeek {
		weeks = append(weeks, g.Cells[i:i+DaysPerWeek])
	}
	return weeks
}

// Renderer builds month grids. It holds only presentation settings, never event state.
type Renderer struct {
	logoBaseURL string
}

// NewRenderer creates a Renderer that points logos at logoBaseURL.
func NewRenderer(logoBaseURL string) *Renderer {
	return &Renderer{logoBaseURL: logoBaseURL}
}

// Render lays out exactly CellCount days starting from the Sunday on or before the first of
// viewMonth, attaching each day's bucket from buckets. today only drives highlighting.
func (r *Renderer) Render(viewMonth time.Time, buckets Buckets, today time.Time) MonthGrid {
	first := StartOfMonth(viewMonth)
	start := GridStart(first)
	loc := first.Location()
	todayISO := domain.FormatISODate(today.In(loc))

	cells := make([]Cell, CellCount)
	for i := range cells {
		day := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, loc)
		iso := domain.FormatISODate(day)

		events := buckets.On(iso)
		views := make([]EventView, 0, len(events))
		for _, ev := range events {
			views = append(views, r.eventView(ev, today))
		}

		cells[i] = Cell{
			Date:    day,
			ISODate: iso,
			Day:     day.Day(),
			InMonth: day.Month() == first.Month(),
			IsToday: iso == todayISO,
			Events:  views,
		}
	}

	return MonthGrid{
		Month: first,
		Label: first.Format(monthLabelLayout),
		Cells: cells,
	}
}

func (r *Renderer) eventView(ev domain.EarningsEvent, today time.Time) EventView {
	return EventView{
		EarningsEvent: ev,
		LogoURL:       LogoURL(r.logoBaseURL, ev.Domain),
		BadgeURI:      BadgeDataURI(ev.Symbol),
		Tooltip:       Tooltip(ev, today),
	}
}
