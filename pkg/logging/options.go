package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agentstation/providerkeys/pkg/constants"
)

// Options selects level, encoding and destination of a logger.
type Options struct {
	// Level is trace, debug, info, warn or error. Unknown values mean info.
	Level string

	// Format is json, console or auto. Auto picks console for a terminal
	// stderr and json otherwise.
	Format string

	// Output is stderr (default), stdout, discard, or a file path to append to.
	Output string

	NoColor bool

	// Caller adds file:line to every entry. Always on at debug and below.
	Caller bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger from opts. The level applies to this logger only.
// The returned Closer releases the log file when Output is a path; the
// caller must close it once the logger is no longer used.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out, closer, err := openOutput(opts.Output)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	level := parseLevel(opts.Level)
	logger := zerolog.New(encoder(out, opts)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if opts.Caller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger, closer, nil
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "discard", "none":
		return io.Discard, nopCloser{}, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func encoder(out io.Writer, opts Options) io.Writer {
	format := strings.ToLower(opts.Format)
	if format == "" || format == "auto" {
		format = "json"
		if out == os.Stderr && isTerminal(os.Stderr) {
			format = "console"
		}
	}
	if format != "console" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: opts.NoColor}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
