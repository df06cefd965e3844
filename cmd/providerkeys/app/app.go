// Package app wires configuration, logging, metrics and the providers
// client together for the providerkeys CLI.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/agentstation/providerkeys/internal/config"
	"github.com/agentstation/providerkeys/internal/metrics"
	"github.com/agentstation/providerkeys/pkg/logging"
	"github.com/agentstation/providerkeys/pkg/providers"
)

// App represents the providerkeys application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	viper  *viper.Viper
	flags  Flags
	config *config.Config
	logger *zerolog.Logger

	// customLogger keeps setupCommand from replacing a logger set by WithLogger.
	customLogger bool
	logCloser    io.Closer

	metrics *metrics.Metrics

	stdout io.Writer
	stderr io.Writer

	// Providers client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client *providers.Client
}

// New creates a new App instance with the given version information.
// Configuration is resolved once flags are parsed.
func New(version, commit, date, builtBy string, opts ...Option) *App {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		viper:   viper.New(),
		config:  config.Default(),
		logger:  logging.Default(),
		metrics: metrics.New(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Metrics returns the metrics collected during this run.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Client returns the providers client, creating it lazily if needed.
func (a *App) Client() *providers.Client {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client
	}

	a.client = providers.NewClient(a.config,
		providers.WithTimeout(a.config.HTTPTimeout),
		providers.WithMetrics(a.metrics),
		providers.WithLogger(a.logger),
	)
	return a.client
}

// Shutdown writes the metrics dump when --metrics was given and closes
// the log output.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	if a.flags.Metrics {
		if err = ctx.Err(); err == nil {
			err = a.metrics.WriteText(a.stderr)
		}
	}
	if a.logCloser != nil {
		if closeErr := a.logCloser.Close(); err == nil {
			err = closeErr
		}
		a.logCloser = nil
	}
	return err
}

// Option is a functional option for configuring the App.
type Option func(*App)

// WithOutput sets the writers for command output and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithViper sets the viper instance used to resolve configuration.
func WithViper(v *viper.Viper) Option {
	return func(a *App) {
		a.viper = v
	}
}

// WithLogger sets a custom logger in place of the flag-configured one.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) {
		a.logger = logger
		a.customLogger = true
	}
}

// WithClient sets a custom providers client (useful for testing).
func WithClient(c *providers.Client) Option {
	return func(a *App) {
		a.client = c
	}
}
