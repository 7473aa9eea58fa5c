package cli

import (
	"github.com/spf13/cobra"

	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month as a 6-week grid",
		Long: `Prints the month given by --month (YYYY-MM). Without it the month of the earliest
stored event is shown, or the current month when there are none.`,
		Example: "  earnings_cli calendar --month 2025-11",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			session := app.session(ctx)
			today := app.Now().In(app.Location)

			view := calendar.CurrentMonth(today)
			if month != "" {
				parsed, err := calendar.ParseMonth(month, app.Location)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				view = parsed
			} else if earliest, ok := session.EarliestMonth(app.Location); ok {
				view = earliest
			}

			grid := app.Renderer.Render(view, session.Buckets(), today)
			if output.IsJSON() {
				return output.JSON(grid)
			}

			printWarnings(output, session)
			return calendar.RenderText(output.Writer(), grid, output.ColorEnabled())
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show, YYYY-MM")
	return cmd
}
