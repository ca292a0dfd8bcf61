package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server    ServerConfig
	Database  PostgresConfig `mapstructure:"database"`
	Redis     RedisConfig
	Retention RetentionConfig
	CORS      CORSConfig `mapstructure:"cors"`
	LogLevel  string     `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig controls the optional latest-reading cache. An empty host
// disables caching entirely; the API then always reads from Postgres.
type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a cache host is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// RetentionConfig controls the sweep of readings past the retention
// horizon. Probability is evaluated once per successful ingest; Interval
// drives the independent background loop.
type RetentionConfig struct {
	Days        int           `mapstructure:"days"`
	Probability float64       `mapstructure:"probability"`
	Interval    time.Duration `mapstructure:"interval"`
}

// Horizon returns the retention window as a duration.
func (c RetentionConfig) Horizon() time.Duration {
	return time.Duration(c.Days) * 24 * time.Hour
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("BEETKAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")

	// Redis defaults
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttl", "15s")

	// Retention defaults: 90 day horizon, 10% chance per ingest, plus a
	// daily background sweep independent of traffic.
	viper.SetDefault("retention.days", 90)
	viper.SetDefault("retention.probability", 0.1)
	viper.SetDefault("retention.interval", "24h")

	// CORS defaults: the dashboard may be served from any origin.
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{"Content-Type"})

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Retention.Days <= 0 {
		return fmt.Errorf("retention days must be positive")
	}
	if config.Retention.Probability < 0 || config.Retention.Probability > 1 {
		return fmt.Errorf("retention probability must be within [0,1]")
	}
	return nil
}
