package cli

import (
	"github.com/spf13/cobra"

	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	"github.com/SscSPs/earnings_calendar_app/internal/utils"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored earnings events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			session := app.session(ctx)
			events := session.Events()

			if output.IsJSON() {
				return output.JSON(events)
			}

			printWarnings(output, session)
			if len(events) == 0 {
				output.Info("No events yet. Add one with: earnings_cli add TICKER")
				return nil
			}

			today := app.Now().In(app.Location)
			table := NewTable(output, "Symbol", "Date", "When", "Time", "Name", "Est. EPS", "Source")
			for _, ev := range events {
				table.AddRow(ev.Symbol, ev.Date, calendar.RelativeDate(ev.Date, today), ev.Time, ev.Name, utils.FormatEstimate(ev.Estimate, ev.Currency), string(ev.Source))
			}
			table.Render()
			return nil
		},
	}
}
