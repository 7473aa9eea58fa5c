package calendar

import (
	"fmt"
	"io"
	"strings"
)

const (
	textCellWidth = 10
	ansiDim       = "\033[2m"
	ansiBold      = "\033[1m"
	ansiReset     = "\033[0m"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderText writes grid as a fixed-width 6x7 table. Each week prints one line of day numbers
// followed by as many lines as its busiest day has events. With color enabled, adjacent-month
// days are dimmed and today is bold.
func RenderText(w io.Writer, grid MonthGrid, color bool) error {
	var b strings.Builder

	width := textCellWidth * DaysPerWeek
	pad := (width - len(grid.Label)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + grid.Label + "\n")

	for _, h := range weekdayHeaders {
		b.WriteString(fmt.Sprintf("%-*s", textCellWidth, h))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", width) + "\n")

	for _, week := range grid.Weeks() {
		rows := 0
		for _, cell := range week {
			if len(cell.Events) > rows {
				rows = len(cell.Events)
			}
		}

		for _, cell := range week {
			label := fmt.Sprintf("%2d", cell.Day)
			if cell.IsToday {
				label = "[" + strings.TrimSpace(label) + "]"
			}
			b.WriteString(styled(fmt.Sprintf("%-*s", textCellWidth, label), cell, color))
		}
		b.WriteString("\n")

		for row := 0; row < rows; row++ {
			for _, cell := range week {
				text := ""
				if row < len(cell.Events) {
					text = " " + cell.Events[row].Symbol
				}
				b.WriteString(styled(fmt.Sprintf("%-*s", textCellWidth, text), cell, color))
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func styled(text string, cell Cell, color bool) string {
	if !color {
		return text
	}
	switch {
	case cell.IsToday:
		return ansiBold + text + ansiReset
	case !cell.InMonth:
		return ansiDim + text + ansiReset
	default:
		return text
	}
}
