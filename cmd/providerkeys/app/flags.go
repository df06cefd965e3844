package app

// Flags holds the global command-line flags.
type Flags struct {
	ConfigFile string
	APIURL     string
	SecretKey  string

	Verbose  bool
	Quiet    bool
	LogLevel string
	NoColor  bool

	Format  string
	Metrics bool
}
