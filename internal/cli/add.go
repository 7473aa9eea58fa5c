package cli

import (
	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TICKER",
		Short: "Add a ticker to the calendar",
		Long: `Looks up the next earnings date for TICKER (MarketData first, then Alpha Vantage)
and saves it. When neither provider has a date you are prompted for one.`,
		Example: "  earnings_cli add AAPL",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			session := app.session(ctx)
			prompter := newStdinPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			result, err := app.Services.AddEvent.Run(ctx, session, args[0], prompter)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(result)
			}

			printWarnings(output, session)
			switch result.State {
			case portssvc.StateExisting:
				output.Info("%s is already on the calendar (%s)", result.Ticker, result.Event.Date)
			case portssvc.StateAbort:
				output.Warning("%s", result.Warning)
			case portssvc.StateRender:
				ev := result.Event
				output.Success("Added %s: %s (%s, source %s)", ev.Symbol, ev.Date, ev.Time, ev.Source)
				if !result.Durable {
					output.Dim("The event is shown for this run only; it was not saved.")
				}
			}
			return nil
		},
	}
}
