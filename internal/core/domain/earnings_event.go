package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source records where an event's date came from.
type Source string

const (
	SourceAlphaVantage Source = "AlphaVantage"
	SourceMarketData   Source = "MarketData"
	SourceManual       Source = "manual"
	SourceFallback     Source = "fallback"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceAlphaVantage, SourceMarketData, SourceManual, SourceFallback:
		return true
	}
	return false
}

// DateTBD is the sentinel stored when no report date is known.
const DateTBD = "TBD"

// TimeTBD is the time-of-day hint used when a provider does not supply one.
const TimeTBD = "TBD"

// ISODateLayout is the calendar bucket key format.
const ISODateLayout = "2006-01-02"

var tickerPattern = regexp.MustCompile(`^[A-Z]{1,5}$`)

// EarningsEvent is a single expected earnings report for one company.
type EarningsEvent struct {
	Symbol string `json:"symbol"`           // Uppercase ticker
	Name   string `json:"name"`             // Display name, defaults to Symbol
	Date   string `json:"date"`             // YYYY-MM-DD or "TBD"
	Time   string `json:"time,omitempty"`   // Free-text timing hint
	Domain string `json:"domain,omitempty"` // Company web domain, used for the logo
	Source Source `json:"source,omitempty"`

	// Carried from the CSV provider when present.
	FiscalDateEnding string           `json:"fiscalDateEnding,omitempty"`
	Estimate         *decimal.Decimal `json:"estimate,omitempty"`
	Currency         string           `json:"currency,omitempty"`
}

// IsValidTicker reports whether s is 1 to 5 uppercase ASCII letters.
func IsValidTicker(s string) bool {
	return tickerPattern.MatchString(s)
}

// NormalizeTicker trims and upper-cases raw user input.
func NormalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	if len(s) != len(ISODateLayout) {
		return false
	}
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// IsValidEventDate reports whether s is an ISO date or the TBD sentinel.
func IsValidEventDate(s string) bool {
	return s == DateTBD || IsISODate(s)
}

// FormatISODate renders t's calendar date in t's own location.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseISODate parses a YYYY-MM-DD string as midnight in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(ISODateLayout, s, loc)
}

// knownDomains maps tickers whose domain is not simply "<ticker>.com".
var knownDomains = map[string]string{
	"AAPL": "apple.com",
	"NVDA": "nvidia.com",
	"AMD":  "amd.com",
	"TSM":  "tsmc.com",
	"AVGO": "broadcom.com",
	"SNOW": "snowflake.com",
	"PYPL": "paypal.com",
	"AGO":  "assuredguaranty.com",
}

// GuessDomain returns the company domain for a ticker, falling back to "<lowercased-ticker>.com".
func GuessDomain(ticker string) string {
	if d, ok := knownDomains[strings.ToUpper(ticker)]; ok {
		return d
	}
	return strings.ToLower(ticker) + ".com"
}

// WithDefaults fills Name, Time and Domain when they are empty and upper-cases Symbol.
func (e EarningsEvent) WithDefaults() EarningsEvent {
	e.Symbol = NormalizeTicker(e.Symbol)
	if e.Name == "" {
		e.Name = e.Symbol
	}
	if e.Time == "" {
		e.Time = TimeTBD
	}
	if e.Domain == "" && e.Symbol != "" {
		e.Domain = GuessDomain(e.Symbol)
	}
	return e
}

// PreloadedEvents is the built-in list shown when the store cannot be reached.
func PreloadedEvents() []EarningsEvent {
	return []EarningsEvent{
		{Symbol: "AVGO", Name: "Broadcom Inc.", Date: "2025-09-04", Time: "Est. (After close)", Domain: "broadcom.com"},
		{Symbol: "TSM", Name: "TSMC (Taiwan Semiconductor)", Date: "2025-10-16", Time: "Before market open", Domain: "tsmc.com"},
		{Symbol: "AMD", Name: "Advanced Micro Devices", Date: "2025-11-04", Time: "After market close", Domain: "amd.com"},
		{Symbol: "AAPL", Name: "Apple Inc.", Date: "2025-11-05", Time: "After market close", Domain: "apple.com"},
		{Symbol: "SNOW", Name: "Snowflake Inc.", Date: "2025-11-07", Time: "After market close", Domain: "snowflake.com"},
		{Symbol: "AGO", Name: "Assured Guaranty Ltd.", Date: "2025-11-10", Time: "Estimated", Domain: "assuredguaranty.com"},
		{Symbol: "PYPL", Name: "PayPal Holdings, Inc.", Date: "2025-11-12", Time: "TBD", Domain: "paypal.com"},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Date: "2025-11-19", Time: "After market close", Domain: "nvidia.com"},
	}
}
