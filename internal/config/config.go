// Package config loads providerkeys settings from flags, the environment,
// .env files and an optional YAML config file.
package config

import (
	"time"

	"github.com/agentstation/providerkeys/pkg/constants"
)

// Config holds the resolved settings.
type Config struct {
	// APIURL is the agent backend base URL.
	APIURL string `mapstructure:"api_url"`

	// Secret is sent as the X-Secret-Key header on protected endpoints.
	Secret string `mapstructure:"secret_key"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogOutput string `mapstructure:"log_output"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `mapstructure:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:      constants.DefaultAPIURL,
		HTTPTimeout: constants.DefaultHTTPTimeout,
		LogLevel:    "info",
		LogFormat:   "auto",
		LogOutput:   "stderr",
	}
}

// BaseURL implements providers.Config.
func (c *Config) BaseURL() string {
	return c.APIURL
}

// SecretKey implements providers.Config.
func (c *Config) SecretKey() string {
	return c.Secret
}
