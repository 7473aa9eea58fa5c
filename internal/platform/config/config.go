package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/SscSPs/earnings_calendar_app/internal/apperrors"
)

// Store backends selectable with STORE_BACKEND.
const (
	StoreBackendJSONBin  = "jsonbin"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Event document store
	StoreBackend     string
	JSONBinBinID     string
	JSONBinMasterKey string
	JSONBinBaseURL   string
	DatabaseURL      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisKey         string

	// Earnings providers
	AlphaVantageKey     string
	AlphaVantageBaseURL string
	MarketDataBaseURL   string
	MarketDataToken     string
	ProviderTimeout     time.Duration

	// Front end
	LogoBaseURL        string
	RateLimit          string
	CORSAllowedOrigins []string

	// Analytics
	PostHogAPIKey   string
	PostHogEndpoint string

	// Logging
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	DebugLogs     bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Missing credentials are not an error here; see StoreConfigError and LookupConfigError.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", StoreBackendJSONBin)
	viper.SetDefault("JSONBIN_BIN_ID", "")
	viper.SetDefault("JSONBIN_MASTER_KEY", "")
	viper.SetDefault("JSONBIN_BASE_URL", "https://api.jsonbin.io/v3")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY", "earnings:events")
	viper.SetDefault("ALPHAVANTAGE_KEY", "")
	viper.SetDefault("ALPHAVANTAGE_BASE_URL", "https://www.alphavantage.co/query")
	viper.SetDefault("MARKETDATA_BASE_URL", "https://api.marketdata.app/v1")
	viper.SetDefault("MARKETDATA_TOKEN", "")
	viper.SetDefault("PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("LOGO_BASE_URL", "https://logo.clearbit.com")
	viper.SetDefault("RATE_LIMIT", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("LOG_MAX_SIZE_MB", 50)
	viper.SetDefault("LOG_MAX_BACKUPS", 3)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 14)
	viper.SetDefault("DEBUG_LOGS", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(viper.GetString("STORE_BACKEND")))
	switch cfg.StoreBackend {
	case StoreBackendJSONBin, StoreBackendPostgres, StoreBackendRedis:
	default:
		return nil, fmt.Errorf("%w: unknown STORE_BACKEND %q (want jsonbin, postgres or redis)", apperrors.ErrConfig, cfg.StoreBackend)
	}
	cfg.JSONBinBinID = viper.GetString("JSONBIN_BIN_ID")
	cfg.JSONBinMasterKey = viper.GetString("JSONBIN_MASTER_KEY")
	cfg.JSONBinBaseURL = viper.GetString("JSONBIN_BASE_URL")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RedisKey = viper.GetString("REDIS_KEY")

	cfg.AlphaVantageKey = viper.GetString("ALPHAVANTAGE_KEY")
	cfg.AlphaVantageBaseURL = viper.GetString("ALPHAVANTAGE_BASE_URL")
	cfg.MarketDataBaseURL = viper.GetString("MARKETDATA_BASE_URL")
	cfg.MarketDataToken = viper.GetString("MARKETDATA_TOKEN")

	timeoutStr := viper.GetString("PROVIDER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ProviderTimeout = timeout

	cfg.LogoBaseURL = strings.TrimRight(viper.GetString("LOGO_BASE_URL"), "/")
	cfg.RateLimit = strings.TrimSpace(viper.GetString("RATE_LIMIT"))
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PostHogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.LogFile = viper.GetString("LOG_FILE")
	cfg.LogMaxSizeMB = viper.GetInt("LOG_MAX_SIZE_MB")
	cfg.LogMaxBackups = viper.GetInt("LOG_MAX_BACKUPS")
	cfg.LogMaxAgeDays = viper.GetInt("LOG_MAX_AGE_DAYS")
	cfg.DebugLogs = viper.GetBool("DEBUG_LOGS")
	if cfg.DebugLogs {
		cfg.LogLevel = "debug"
	}

	if err := cfg.StoreConfigError(); err != nil {
		log.Printf("Warning: %v. Event routes will answer 500 until it is set.\n", err)
	}
	if err := cfg.LookupConfigError(); err != nil {
		log.Printf("Warning: %v. Earnings lookups will answer 500 until it is set.\n", err)
	}

	return cfg, nil
}

// StoreConfigError reports the first missing setting the selected store backend needs.
func (c *Config) StoreConfigError() error {
	switch c.StoreBackend {
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: missing PGSQL_URL for the postgres store", apperrors.ErrConfig)
		}
	case StoreBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("%w: missing REDIS_ADDR for the redis store", apperrors.ErrConfig)
		}
	default:
		if c.JSONBinBinID == "" || c.JSONBinMasterKey == "" {
			return fmt.Errorf("%w: missing JSONBin credentials (JSONBIN_BIN_ID, JSONBIN_MASTER_KEY)", apperrors.ErrConfig)
		}
	}
	return nil
}

// LookupConfigError reports a missing market-data API key.
func (c *Config) LookupConfigError() error {
	if c.AlphaVantageKey == "" {
		return fmt.Errorf("%w: missing ALPHAVANTAGE_KEY", apperrors.ErrConfig)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
