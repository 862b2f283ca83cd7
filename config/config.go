package config

import (
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultFeedPath        = "data/imf_rates.tsv"
	defaultRefreshInterval = 6 * time.Hour
	defaultLogLevel        = "info"
)

// Config holds application configuration.
type Config struct {
	Port            string
	FeedPath        string
	RefreshInterval time.Duration
	LogLevel        string
	IsProduction    bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Invalid values fall back to their defaults with a warning.
func LoadConfig(logger log.Logger) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("FEED_PATH", defaultFeedPath)
	v.SetDefault("REFRESH_INTERVAL", defaultRefreshInterval.String())
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("IS_PRODUCTION", false)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		FeedPath:     v.GetString("FEED_PATH"),
		LogLevel:     strings.ToLower(v.GetString("LOG_LEVEL")),
		IsProduction: v.GetBool("IS_PRODUCTION"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		level.Warn(logger).Log("msg", "PORT not set", "default", cfg.Port)
	}
	if cfg.FeedPath == "" {
		cfg.FeedPath = defaultFeedPath
		level.Warn(logger).Log("msg", "FEED_PATH not set", "default", cfg.FeedPath)
	}

	refresh := v.GetString("REFRESH_INTERVAL")
	interval, err := time.ParseDuration(refresh)
	if err != nil || interval <= 0 {
		interval = defaultRefreshInterval
		level.Warn(logger).Log("msg", "invalid REFRESH_INTERVAL", "value", refresh, "default", interval)
	}
	cfg.RefreshInterval = interval

	if _, ok := levels[cfg.LogLevel]; !ok {
		level.Warn(logger).Log("msg", "invalid LOG_LEVEL", "value", cfg.LogLevel, "default", defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

var levels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
}

// LevelFilter the level.Option matching LogLevel
func (c *Config) LevelFilter() level.Option {
	if opt, ok := levels[c.LogLevel]; ok {
		return opt
	}
	return level.AllowInfo()
}
