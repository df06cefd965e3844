package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/providerkeys/internal/config"
	"github.com/agentstation/providerkeys/internal/output"
)

// Execute runs the providerkeys CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "providerkeys",
		Short:   "Inspect AI providers and their stored API keys",
		Version: a.version,
		Long: `providerkeys queries the local agent backend for the AI providers it
supports and reports which of them have API keys stored.

The secret key for protected endpoints is read from --secret-key, the
PROVIDERKEYS_SECRET_KEY environment variable, a .env file or the config file.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.ConfigFile, "config", "", "config file (default is $HOME/.providerkeys.yaml)")
	pf.StringVar(&a.flags.APIURL, "api-url", "", "agent backend base URL (default http://127.0.0.1:3000)")
	pf.StringVar(&a.flags.SecretKey, "secret-key", "", "secret key sent as X-Secret-Key")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolVarP(&a.flags.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	pf.StringVarP(&a.flags.Format, "format", "o", "", "output format: table, json, yaml, wide")
	pf.BoolVar(&a.flags.Metrics, "metrics", false, "print request metrics to stderr on exit")

	mustBindFlag(a, pf, "config", "config")
	mustBindFlag(a, pf, "api_url", "api-url")
	mustBindFlag(a, pf, "secret_key", "secret-key")

	rootCmd.SetVersionTemplate("providerkeys {{.Version}}\n")

	rootCmd.AddCommand(a.NewProvidersCommand())
	rootCmd.AddCommand(a.NewVersionCommand())

	return rootCmd
}

// setupCommand resolves configuration and the logger once flags are parsed.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if _, err := output.ParseFormat(a.flags.Format); err != nil {
		return err
	}
	if cmd.Annotations[annotationSkipConfig] == "true" {
		return nil
	}

	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.config = cfg

	if !a.customLogger {
		logger, closer, err := NewLogger(a.flags, cfg)
		if err != nil {
			return err
		}
		a.logger = &logger
		a.logCloser = closer
	}

	a.logger.Debug().
		Str("api_url", cfg.APIURL).
		Str("config_file", cfg.ConfigFile).
		Dur("http_timeout", cfg.HTTPTimeout).
		Msg("Configuration loaded")

	return nil
}

// render writes data in the selected format. Table formats use the
// table produced by toTable.
func (a *App) render(data any, toTable func(wide bool) output.Data) error {
	format := output.DetectFormat(a.flags.Format)
	formatter := output.NewFormatter(format)
	if format.IsTable() {
		return formatter.Format(a.stdout, toTable(format == output.FormatWide))
	}
	return formatter.Format(a.stdout, data)
}

const annotationSkipConfig = "skip-config"

// ExitOnError prints err to stderr and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustBindFlag binds a persistent flag to a viper key or panics.
// Flags are defined in this package, so a failure is a programming error.
func mustBindFlag(a *App, flags *pflag.FlagSet, key, name string) {
	if err := a.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic("programming error: failed to bind flag " + name + ": " + err.Error())
	}
}
