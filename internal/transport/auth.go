package transport

import (
	"net/http"

	"github.com/agentstation/providerkeys/pkg/constants"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, secret string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {}

// HeaderAuth sends the secret verbatim in a custom header.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, secret string) {
	req.Header.Set(a.Header, secret)
}

// SecretKeyAuth returns the authenticator used by the agent backend's
// protected endpoints.
func SecretKeyAuth() Authenticator {
	return &HeaderAuth{Header: constants.SecretKeyHeader}
}
