package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the event store and both earnings providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			status := app.Services.Health.CheckDependencies(ctx)
			if output.IsJSON() {
				return output.JSON(status)
			}

			table := NewTable(output, "Dependency", "Status")
			table.AddRow("store ("+app.Config.StoreBackend+")", status.Store)
			table.AddRow("marketdata", status.MarketData)
			table.AddRow("alphavantage", status.AlphaVantage)
			table.Render()
			return nil
		},
	}
}
