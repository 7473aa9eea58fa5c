package calendar

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageTemplateName is the template that renders the full calendar page.
const PageTemplateName = "calendar.html"

// PageView is everything the calendar page template needs.
type PageView struct {
	Grid       MonthGrid
	Month      string // YYYY-MM of the displayed month
	PrevMonth  string
	NextMonth  string
	TodayMonth string
	Warnings   []string
	Notice     string
	Error      string
	Prompt     *ManualPrompt
}

// ManualPrompt asks the user for a date after every provider came back empty.
type ManualPrompt struct {
	Ticker string
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}
