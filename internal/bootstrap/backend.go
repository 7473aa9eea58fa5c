// Package bootstrap assembles the store backend and earnings providers selected by configuration.
// Both binaries share it so the server and the CLI see the same event list.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/SscSPs/earnings_calendar_app/internal/adapters/providers/alphavantage"
	"github.com/SscSPs/earnings_calendar_app/internal/adapters/providers/marketdata"
	"github.com/SscSPs/earnings_calendar_app/internal/adapters/storage/jsonbin"
	"github.com/SscSPs/earnings_calendar_app/internal/core/domain"
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
	"github.com/SscSPs/earnings_calendar_app/internal/platform/config"
	"github.com/SscSPs/earnings_calendar_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/earnings_calendar_app/internal/repositories/redis"
	"github.com/SscSPs/earnings_calendar_app/migrations"
	"github.com/SscSPs/earnings_calendar_app/pkg/database"
)

// Backend is the configured event document store and whatever it holds open.
type Backend struct {
	Repos portsrepo.RepositoryProvider
	// Redis is set only for the redis backend; the rate limiter shares it.
	Redis   *goredis.Client
	closers []func()
}

// Close releases pools and clients in reverse order of creation.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// OpenBackend connects the store named by cfg.StoreBackend. Missing credentials are not an
// error: the returned store then fails every call with apperrors.ErrConfig. Only a configured
// database that cannot be reached or migrated fails here.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	b := &Backend{}

	if cfgErr := cfg.StoreConfigError(); cfgErr != nil {
		logger.Warn("Event store is not configured", slog.String("backend", cfg.StoreBackend), slog.String("error", cfgErr.Error()))
		b.Repos = portsrepo.RepositoryProvider{EventDocumentRepo: unconfiguredStore{err: cfgErr}}
		return b, nil
	}

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
			return nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		b.closers = append(b.closers, func() { database.ClosePgxPool(pool, logger) })
		b.Repos = pgsql.NewRepositoryProvider(pool)

	case config.StoreBackendRedis:
		client := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		repo := redis.NewEventDocumentRepository(client, cfg.RedisKey)
		if err := repo.Ping(ctx); err != nil {
			logger.Warn("Redis is not reachable yet", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		}
		b.closers = append(b.closers, func() {
			if err := repo.Close(); err != nil {
				logger.Error("Error closing redis client", slog.String("error", err.Error()))
			}
		})
		b.Redis = client
		b.Repos = portsrepo.RepositoryProvider{EventDocumentRepo: repo}

	default:
		store := jsonbin.NewStore(cfg.JSONBinBinID, cfg.JSONBinMasterKey,
			jsonbin.WithBaseURL(cfg.JSONBinBaseURL),
			jsonbin.WithHTTPClient(&http.Client{Timeout: cfg.ProviderTimeout}))
		b.Repos = portsrepo.RepositoryProvider{EventDocumentRepo: store}
	}

	logger.Info("Event store ready", slog.String("backend", cfg.StoreBackend))
	return b, nil
}

// Providers returns the earnings providers in lookup priority order: MarketData, then Alpha Vantage.
func Providers(cfg *config.Config) []portssvc.EarningsProvider {
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	marketDataOpts := []marketdata.ClientOption{
		marketdata.WithBaseURL(cfg.MarketDataBaseURL),
		marketdata.WithHTTPClient(httpClient),
	}
	if cfg.MarketDataToken != "" {
		marketDataOpts = append(marketDataOpts, marketdata.WithToken(cfg.MarketDataToken))
	}

	return []portssvc.EarningsProvider{
		marketdata.NewClient(marketDataOpts...),
		alphavantage.NewClient(cfg.AlphaVantageKey,
			alphavantage.WithBaseURL(cfg.AlphaVantageBaseURL),
			alphavantage.WithHTTPClient(httpClient)),
	}
}

// unconfiguredStore stands in for a backend whose settings are missing.
type unconfiguredStore struct {
	err error
}

func (s unconfiguredStore) ReadDocument(context.Context) ([]byte, error) {
	return nil, s.err
}

func (s unconfiguredStore) WriteDocument(context.Context, []domain.EarningsEvent) error {
	return s.err
}
