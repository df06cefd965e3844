// Package constants provides shared constants used throughout the providerkeys codebase.
// This includes backend paths, header names, display defaults, timeouts and
// file permissions that should be consistent across the library and the CLI.
package constants

import "time"

// Backend endpoint paths, relative to the configured base URL
const (
	// ProvidersPath is the provider catalog endpoint (GET, unauthenticated)
	ProvidersPath = "/agent/providers"

	// SecretsStatusPath is the secrets status endpoint (POST, authenticated)
	SecretsStatusPath = "/secrets/providers"
)

// Header constants
const (
	// SecretKeyHeader carries the backend secret on authenticated requests
	SecretKeyHeader = "X-Secret-Key"

	// ContentTypeJSON is the media type used for request and response bodies
	ContentTypeJSON = "application/json"
)

// Display defaults applied when the backend omits a field
const (
	// UnknownProviderName is used when a provider has no display name
	UnknownProviderName = "Unknown Provider"

	// NoDescription is used when a provider has no description
	NoDescription = "No description available."
)

// Timeout constants
const (
	// DefaultHTTPTimeout is the standard timeout for requests to the backend
	DefaultHTTPTimeout = 30 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the CLI
	ShutdownTimeout = 5 * time.Second
)

// Configuration defaults
const (
	// DefaultAPIURL is the base URL of a locally running agent backend
	DefaultAPIURL = "http://127.0.0.1:3000"

	// EnvPrefix is the prefix for environment variable configuration
	EnvPrefix = "PROVIDERKEYS"

	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".providerkeys"
)

// FilePermissions is the permission for created log files (rw-r--r--)
const FilePermissions = 0644

// Error messages
const (
	// ErrMsgSecretsFetch is the fixed message for a failed secrets status request
	ErrMsgSecretsFetch = "Failed to fetch secrets"
)
