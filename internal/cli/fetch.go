package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	"github.com/SscSPs/earnings_calendar_app/internal/dto"
)

func newFetchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "fetch TICKER",
		Short:   "Look up the next earnings date without saving it",
		Example: "  earnings_cli fetch NVDA",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := app.commandContext(cmd)
			defer cancel()

			ticker := domain.NormalizeTicker(args[0])
			if !domain.IsValidTicker(ticker) {
				err := errors.New("invalid ticker format (use 1-5 letters, e.g., AAPL)")
				output.Error("%v", err)
				return err
			}

			event, err := app.Services.Lookup.Lookup(ctx, ticker)
			if errors.Is(err, apperrors.ErrUpstream) || errors.Is(err, apperrors.ErrConfig) {
				output.Error("Lookup failed: %v", err)
				return err
			}
			if errors.Is(err, apperrors.ErrNotFound) {
				output.Warning("No earnings data found for %s", ticker)
				return err
			}
			if err != nil {
				output.Error("Lookup failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(dto.ToFetchEarningsResponse(event))
			}
			output.Success("%s reports on %s (%s)", event.Symbol, event.Date, event.Time)
			output.Dim("source: %s", event.Source)
			return nil
		},
	}
}
