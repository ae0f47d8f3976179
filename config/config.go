package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultCoinGeckoURL = "https://api.coingecko.com/api/v3"
)

type (
	CoinGecko struct {
		BaseURL string
		APIKey  string
		// Timeout of zero leaves requests unbounded.
		Timeout time.Duration
	}

	Database struct {
		Driver          string
		URL             string
		Retention       time.Duration
		CleanupInterval time.Duration
	}

	Server struct {
		Port string
	}

	Config struct {
		Server    Server
		CoinGecko CoinGecko
		Database  Database

		// TrendSeed makes generated trend series reproducible when set.
		TrendSeed *uint64
	}
)

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	cfg := &Config{}

	cfg.Server.Port = getEnv("PORT", "8080")

	cfg.CoinGecko.BaseURL = getEnv("COINGECKO_API_URL", DefaultCoinGeckoURL)
	cfg.CoinGecko.APIKey = getEnv("COINGECKO_API_KEY", "")
	cfg.CoinGecko.Timeout = getEnvDuration("HTTP_TIMEOUT", 0)

	cfg.Database.Driver = getEnv("DB_DRIVER", "postgres")
	cfg.Database.URL = getEnv("DATABASE_URL", "")
	cfg.Database.Retention = getEnvPositiveDuration("SNAPSHOT_RETENTION", 48*time.Hour)
	cfg.Database.CleanupInterval = getEnvPositiveDuration("CLEANUP_INTERVAL", time.Hour)

	if v := getEnv("TREND_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("ignoring invalid TREND_SEED", "value", v, "error", err)
		} else {
			cfg.TrendSeed = &seed
		}
	}

	return cfg
}

// PersistenceEnabled reports whether snapshots should be recorded.
func (c *Config) PersistenceEnabled() bool {
	return c.Database.URL != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", defaultValue)
		return defaultValue
	}
	return d
}

// getEnvPositiveDuration is getEnvDuration for values that must be above zero,
// such as ticker intervals.
func getEnvPositiveDuration(key string, defaultValue time.Duration) time.Duration {
	d := getEnvDuration(key, defaultValue)
	if d <= 0 {
		slog.Warn("non-positive duration, using default", "key", key, "value", d, "default", defaultValue)
		return defaultValue
	}
	return d
}
