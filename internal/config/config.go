package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port             int    `mapstructure:"PORT"`
	Environment      string `mapstructure:"ENVIRONMENT"`
	APIKey           string `mapstructure:"API_KEY"`
	CatalogBaseURL   string `mapstructure:"CATALOG_BASE_URL"`
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	CorsAllowOrigins string `mapstructure:"CORS_ALLOW_ORIGINS"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	LogFormat        string `mapstructure:"LOG_FORMAT"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var defaults = map[string]any{
	"PORT":               3001,
	"ENVIRONMENT":        "development",
	"API_KEY":            "",
	"CATALOG_BASE_URL":   "https://api.rawg.io/api",
	"DATABASE_DRIVER":    DriverPostgres,
	"DATABASE_URL":       "",
	"CORS_ALLOW_ORIGINS": "*",
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "json",
}

// LoadConfig loads the configuration from a .env file in dir and environment
// variables. Environment variables win over the file.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	// A missing .env is normal outside local development.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Production reports whether the service runs with production hardening.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CorsAllowOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}

	switch c.DatabaseDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for driver %q", c.DatabaseDriver)
		}
	case DriverSQLite:
		if c.DatabaseURL == "" {
			c.DatabaseURL = "videogames.db"
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}

	c.CatalogBaseURL = strings.TrimRight(c.CatalogBaseURL, "/")
	return nil
}
