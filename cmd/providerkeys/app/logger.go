package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/providerkeys/internal/config"
	"github.com/agentstation/providerkeys/pkg/errors"
	"github.com/agentstation/providerkeys/pkg/logging"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// NewLogger creates a configured logger and the closer for its output.
// Log level precedence (highest to lowest):
//  1. --log-level flag
//  2. -v/--verbose (debug) and -q/--quiet (warn); quiet wins if both are set
//  3. log_level from the config file or environment
//  4. Default (info)
func NewLogger(flags Flags, cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	level, warning := determineLogLevel(flags, cfg)

	logger, closer, err := logging.New(logging.Options{
		Level:   level,
		Format:  cfg.LogFormat,
		Output:  cfg.LogOutput,
		NoColor: flags.NoColor,
	})
	if err != nil {
		return logger, closer, errors.NewConfigError("log_output", "cannot open log output", err)
	}

	// The CLI owns the process, so it may lower zerolog's global floor.
	if level == "trace" {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	if warning != "" {
		logger.Warn().Msg(warning)
	}
	return logger, closer, nil
}

// determineLogLevel returns the level to use and a warning for the user
// when the flags were contradictory or invalid.
func determineLogLevel(flags Flags, cfg *config.Config) (string, string) {
	if flags.LogLevel != "" {
		if !validLogLevels[flags.LogLevel] {
			return "info", "invalid log level " + flags.LogLevel + ", using info"
		}
		return flags.LogLevel, ""
	}

	if flags.Verbose && flags.Quiet {
		return "warn", "both --verbose and --quiet specified, using --quiet"
	}
	if flags.Verbose {
		return "debug", ""
	}
	if flags.Quiet {
		return "warn", ""
	}

	if cfg != nil && validLogLevels[cfg.LogLevel] {
		return cfg.LogLevel, ""
	}
	return "info", ""
}
