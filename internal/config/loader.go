package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/providerkeys/pkg/constants"
	"github.com/agentstation/providerkeys/pkg/errors"
)

// envVarPattern matches ${VAR_NAME} or $VAR_NAME patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Z_][A-Z0-9_]*)`)

// Load resolves configuration in order of precedence:
// 1. Command-line flags bound to v
// 2. Environment variables (prefixed with PROVIDERKEYS_)
// 3. .env.local, then .env
// 4. Config file (--config, or ~/.providerkeys.yaml)
// 5. Defaults
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	loadEnvFiles()

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.NewConfigError("config file", "failed to read config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError("config file", "failed to decode configuration", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.APIURL = expandEnvVars(cfg.APIURL)
	cfg.Secret = expandEnvVars(cfg.Secret)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return errors.NewConfigError("api_url", fmt.Sprintf("invalid URL %q", c.APIURL), err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.NewConfigError("api_url", fmt.Sprintf("URL %q must use http or https", c.APIURL), nil)
	}
	if u.Host == "" {
		return errors.NewConfigError("api_url", fmt.Sprintf("URL %q has no host", c.APIURL), nil)
	}
	if c.HTTPTimeout <= 0 {
		return errors.NewConfigError("http_timeout", fmt.Sprintf("timeout must be positive, got %s", c.HTTPTimeout), nil)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("api_url", d.APIURL)
	v.SetDefault("secret_key", "")
	v.SetDefault("http_timeout", d.HTTPTimeout)
	v.SetDefault("log_level", getEnvOrDefault("LOG_LEVEL", d.LogLevel))
	v.SetDefault("log_format", getEnvOrDefault("LOG_FORMAT", d.LogFormat))
	v.SetDefault("log_output", getEnvOrDefault("LOG_OUTPUT", d.LogOutput))
}

// loadEnvFiles loads .env files without overriding variables already set,
// so .env.local wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// expandEnvVars expands ${VAR} and $VAR references, leaving unknown ones as is.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		var name string
		if strings.HasPrefix(match, "${") {
			name = match[2 : len(match)-1]
		} else {
			name = match[1:]
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return match
	})
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
