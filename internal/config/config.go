package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// defaultSheetAPIURL is the production spreadsheet web app. Deployments
// point SHEET_API_URL elsewhere for staging or tests.
const defaultSheetAPIURL = "https://script.google.com/macros/s/AKfycbzq8hLxPifRelayDeploy/exec"

// Config holds all configuration for the relay service.
type Config struct {
	// Base URL of the spreadsheet-backed upstream provider
	SheetAPIURL string `mapstructure:"sheet_api_url"`

	// TCP port the relay listens on
	Port int `mapstructure:"port"`

	// Minimum log level: debug, info, warn or error
	LogLevel string `mapstructure:"log_level"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - SHEET_API_URL (optional, defaults to the production web app)
//   - PORT (optional, defaults to 10000)
//   - LOG_LEVEL (optional, defaults to info)
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("sheet_api_url", defaultSheetAPIURL)
	v.SetDefault("port", 10000)
	v.SetDefault("log_level", "info")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.pifrelay")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("sheet_api_url", "SHEET_API_URL")
	v.BindEnv("port", "PORT")
	v.BindEnv("log_level", "LOG_LEVEL")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.SheetAPIURL == "" {
		return nil, fmt.Errorf("sheet_api_url must not be empty")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	return config, nil
}
