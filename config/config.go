package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/packlens/backend/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Classifier ClassifierConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Log        LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ClassifierConfig holds classifier and request-size configuration
type ClassifierConfig struct {
	VocabularyFile string `mapstructure:"vocabulary_file"` // optional extra vocabulary (YAML)
	MaxBatchSize   int    `mapstructure:"max_batch_size"`
	MaxTitleLength int    `mapstructure:"max_title_length"`
}

// CacheConfig holds result cache configuration
type CacheConfig struct {
	TTL        time.Duration `mapstructure:"ttl"`
	MaxEntries int           `mapstructure:"max_entries"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
	Burst int `mapstructure:"burst"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/packlens/")

	// Environment variable settings
	v.SetEnvPrefix("PACKLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*"})

	// Classifier defaults
	v.SetDefault("classifier.vocabulary_file", "")
	v.SetDefault("classifier.max_batch_size", 100)
	v.SetDefault("classifier.max_title_length", 512)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.max_entries", 10000)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 600)
	v.SetDefault("ratelimit.burst", 20)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Classifier.MaxBatchSize <= 0 {
		return fmt.Errorf("classifier max batch size must be positive, got: %d", config.Classifier.MaxBatchSize)
	}

	if config.Classifier.MaxTitleLength <= 0 {
		return fmt.Errorf("classifier max title length must be positive, got: %d", config.Classifier.MaxTitleLength)
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	if config.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache max entries must not be negative, got: %d", config.Cache.MaxEntries)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}

	if config.RateLimit.PerIP > 0 && config.RateLimit.Burst == 0 {
		return fmt.Errorf("rate limit burst must be positive when per-IP limiting is enabled")
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return err
	}

	if config.Log.Format != logging.FormatConsole && config.Log.Format != logging.FormatJSON {
		return fmt.Errorf("log format must be '%s' or '%s', got: %s", logging.FormatConsole, logging.FormatJSON, config.Log.Format)
	}

	return nil
}
