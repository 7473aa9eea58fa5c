package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/earnings_calendar_app/internal/bootstrap"
	"github.com/SscSPs/earnings_calendar_app/internal/calendar"
	"github.com/SscSPs/earnings_calendar_app/internal/cli"
	"github.com/SscSPs/earnings_calendar_app/internal/core/services"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/config"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Command output owns stdout; logs go to stderr and the optional file.
	logLevel := "error"
	if cfg.DebugLogs {
		logLevel = "debug"
	}
	logger, logCloser := logging.NewLogger(logging.Config{
		Level:      logLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Console:    os.Stderr,
	})
	defer logCloser.Close()
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	backend, err := bootstrap.OpenBackend(ctx, cfg, logger)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer backend.Close()

	app := &cli.App{
		Config:   cfg,
		Logger:   logger,
		Services: services.NewServiceContainer(backend.Repos, bootstrap.Providers(cfg)...),
		Renderer: calendar.NewRenderer(cfg.LogoBaseURL),
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		return 1
	}
	return 0
}
