// Package cli provides the terminal client for the earnings calendar.
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/config"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/logging"
)

// commandTimeout bounds every command: lookups, store reads and the write.
const commandTimeout = 60 * time.Second

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services *portssvc.ServiceContainer
	Renderer *calendar.Renderer
	Now      func() time.Time
	Location *time.Location
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.Location == nil {
		app.Location = time.Local
	}

	rootCmd := &cobra.Command{
		Use:   "earnings_cli",
		Short: "Track upcoming earnings-report dates",
		Long: `earnings_cli reads and updates the same event list as the web calendar.

Add a ticker and its next report date is looked up automatically; when no
provider knows it you are asked to type the date.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors")

	rootCmd.AddCommand(newAddCmd(app))
	rootCmd.AddCommand(newListCmd(app))
	rootCmd.AddCommand(newCalendarCmd(app))
	rootCmd.AddCommand(newFetchCmd(app))
	rootCmd.AddCommand(newHealthCmd(app))

	return rootCmd
}

// commandContext carries the app logger so services log through it.
func (a *App) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, commandTimeout)
	return logging.WithLogger(ctx, a.Logger), cancel
}

// session loads the event list, falling back to the preloaded events when the store fails.
func (a *App) session(ctx context.Context) *calendar.Session {
	return calendar.LoadSession(ctx, a.Services.EventStore, a.Logger)
}

func printWarnings(output *Output, session *calendar.Session) {
	for _, w := range session.Warnings() {
		output.Warning("! %s", w)
	}
}
