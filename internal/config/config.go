// Package config loads CLI configuration.
//
// Sources in order of precedence:
//  1. CLI flags (bound by the command layer)
//  2. Environment variables (RMAPI_*)
//  3. Configuration file (~/.config/remarkable-usb-api/config.yaml)
//  4. Default values
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/OliverTED/remarkable-usb-api/pkg/tablet"
)

// Config holds all client configuration.
type Config struct {
	// BaseURL is the root URL of the device's REST API.
	BaseURL string `mapstructure:"base_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// Retries is the number of attempts for transient transport failures.
	Retries int `mapstructure:"retries"`

	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Format is the log output format: console or json.
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults, env and config file wired up.
// The command layer binds its flags onto this instance before Load.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("base_url", tablet.DefaultBaseURL)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("retries", 3)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("RMAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "remarkable-usb-api"))
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://, got %q", c.BaseURL)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
