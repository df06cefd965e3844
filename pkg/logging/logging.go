// Package logging holds the zerolog loggers used by providerkeys.
//
// Every backend call runs with a context logger tagged with a request id
// and the public operation that started it. Per-provider detail lines add
// a provider_id on top:
//
//	ctx = logging.WithRequestID(ctx, uuid.NewString())
//	ctx = logging.WithOperation(ctx, "secrets_status")
//	logging.FromContext(logging.WithProvider(ctx, "openai")).Debug().Msg("Provider secrets status")
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

var defaultLogger = newEnvLogger()

// newEnvLogger builds the process default from LOG_LEVEL, DEBUG, LOG_FORMAT
// and NO_COLOR. It only writes to stderr, so there is nothing to close.
func newEnvLogger() zerolog.Logger {
	level := os.Getenv("LOG_LEVEL")
	if level == "" && os.Getenv("DEBUG") != "" {
		level = "debug"
	}

	logger, _, err := New(Options{
		Level:   level,
		Format:  os.Getenv("LOG_FORMAT"),
		NoColor: os.Getenv("NO_COLOR") != "",
	})
	if err != nil {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return logger
}

// Default returns the process-wide logger used when a context carries none.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}
