// Package config loads the dashboard configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`

	// Sources configures the external data feeds
	Sources struct {
		// Timeout bounds every individual source call
		Timeout time.Duration `env:"SOURCES_TIMEOUT" env-default:"2s" yaml:"timeout" validate:"gt=0"`

		Image struct {
			BaseURL string `env:"UNSPLASH_BASE_URL" yaml:"baseUrl"`
			// APIKey is the Unsplash access key; empty or placeholder disables the source
			APIKey string `env:"UNSPLASH_API_KEY" yaml:"apiKey"`
		} `yaml:"image"`

		Weather struct {
			BaseURL string `env:"WEATHER_BASE_URL" yaml:"baseUrl"`
			APIKey  string `env:"WEATHER_API_KEY" yaml:"apiKey"`
			// Query is the WeatherAPI location query
			Query string `env:"WEATHER_QUERY" env-default:"auto:ip" yaml:"query"`
		} `yaml:"weather"`

		News struct {
			BaseURL  string `env:"NEWS_BASE_URL" yaml:"baseUrl"`
			APIKey   string `env:"NEWS_API_KEY" yaml:"apiKey"`
			Country  string `env:"NEWS_COUNTRY" env-default:"us" yaml:"country" validate:"len=2"`
			Category string `env:"NEWS_CATEGORY" env-default:"technology" yaml:"category"`
		} `yaml:"news"`

		Quote struct {
			BaseURL string `env:"QUOTE_BASE_URL" yaml:"baseUrl"`
		} `yaml:"quote"`
	} `yaml:"sources"`

	// Storage selects where the theme preference is persisted
	Storage struct {
		// Driver is either "file" or "postgres"
		Driver string `env:"STORAGE_DRIVER" env-default:"file" yaml:"driver" validate:"oneof=file postgres"`
		// Path is the preferences file used by the file driver
		Path string `env:"STORAGE_PATH" env-default:".notfound/preferences.json" yaml:"path" validate:"required_if=Driver file"` //nolint: lll
	} `yaml:"storage"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"notfound" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Metrics controls the Prometheus textfile export
	Metrics struct {
		// TextfilePath, when set, receives the metrics after each command
		TextfilePath string `env:"METRICS_TEXTFILE" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: environment variables and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case configPath == "" || errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	default:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
