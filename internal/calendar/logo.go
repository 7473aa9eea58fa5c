package calendar

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	"github.com/dustin/go-humanize"
)

// LogoURL points at the logo service entry for a company domain.
func LogoURL(baseURL, companyDomain string) string {
	if companyDomain == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(companyDomain)
}

const badgeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="40">` +
	`<rect fill="#f3f4f6" width="100%%" height="100%%"/>` +
	`<text x="50%%" y="55%%" font-size="10" text-anchor="middle" fill="#4b5563" font-family="Arial" dy=".3em">%s</text>` +
	`</svg>`

// BadgeDataURI is the generated text badge shown when the logo image fails to load.
func BadgeDataURI(symbol string) string {
	svg := fmt.Sprintf(badgeSVG, html.EscapeString(symbol))
	return "data:image/svg+xml;charset=utf-8," + url.PathEscape(svg)
}

// Tooltip is the hover text for an event: name, symbol, date, time and distance from today.
func Tooltip(ev domain.EarningsEvent, today time.Time) string {
	text := fmt.Sprintf("%s (%s) · %s · %s", ev.Name, ev.Symbol, ev.Date, ev.Time)
	if when := RelativeDate(ev.Date, today); when != "" {
		text += " · " + when
	}
	return text
}

// RelativeDate describes an ISO date relative to today ("3 weeks from now"); empty for TBD.
func RelativeDate(isoDate string, today time.Time) string {
	if !domain.IsISODate(isoDate) {
		return ""
	}
	loc := today.Location()
	date, err := domain.ParseISODate(isoDate, loc)
	if err != nil {
		return ""
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	if date.Equal(midnight) {
		return "today"
	}
	return humanize.RelTime(date, midnight, "ago", "from now")
}
