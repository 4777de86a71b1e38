package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OliverTED/remarkable-usb-api/pkg/tablet"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, tablet.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RMAPI_BASE_URL", "http://192.168.0.9")
	t.Setenv("RMAPI_RETRIES", "5")
	t.Setenv("RMAPI_LOGGING_LEVEL", "debug")

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://192.168.0.9", cfg.BaseURL)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: http://10.0.0.5\ntimeout: 5s\nlogging:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := New(path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 3, cfg.Retries, "unset keys keep their defaults")
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		BaseURL: "http://10.11.99.1",
		Timeout: time.Second,
		Retries: 3,
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"https ok", func(c *Config) { c.BaseURL = "https://10.11.99.1" }, false},
		{"empty base url", func(c *Config) { c.BaseURL = "" }, true},
		{"bad scheme", func(c *Config) { c.BaseURL = "ftp://10.11.99.1" }, true},
		{"negative retries", func(c *Config) { c.Retries = -1 }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
