package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/providerkeys/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "provider",
			ID:       "openai",
		}
		assert.Equal(t, "provider with ID openai not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("provider", "cohere")
		wrapped := fmt.Errorf("status: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestRequestError(t *testing.T) {
	t.Run("message defaults to status text", func(t *testing.T) {
		err := pkgerrors.NewRequestError("GET", "http://localhost/agent/providers", 500, "")
		assert.Equal(t, "Internal Server Error", err.Message)
		assert.Equal(t, "Internal Server Error", err.Status)
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "/agent/providers")
	})

	t.Run("fixed message", func(t *testing.T) {
		err := pkgerrors.NewRequestError("POST", "http://localhost/secrets/providers", 401, "Failed to fetch secrets")
		assert.Equal(t, "Failed to fetch secrets", err.Message)
		assert.Equal(t, "Unauthorized", err.Status)
		assert.Contains(t, err.Error(), "Failed to fetch secrets")
	})

	t.Run("without endpoint", func(t *testing.T) {
		err := &pkgerrors.RequestError{StatusCode: 404, Status: "Not Found"}
		assert.Equal(t, "request failed with status 404: Not Found", err.Error())
	})

	t.Run("status classification", func(t *testing.T) {
		unauthorized := pkgerrors.NewRequestError("POST", "", 401, "")
		forbidden := pkgerrors.NewRequestError("POST", "", 403, "")
		unavailable := pkgerrors.NewRequestError("GET", "", 503, "")
		badRequest := pkgerrors.NewRequestError("GET", "", 400, "")

		assert.True(t, pkgerrors.IsUnauthorized(unauthorized))
		assert.True(t, pkgerrors.IsUnauthorized(forbidden))
		assert.True(t, pkgerrors.IsBackendUnavailable(unavailable))
		assert.False(t, pkgerrors.IsBackendUnavailable(badRequest))
		assert.False(t, pkgerrors.IsUnauthorized(badRequest))

		for _, err := range []error{unauthorized, forbidden, unavailable, badRequest} {
			assert.True(t, pkgerrors.IsRequestError(err))
			assert.False(t, pkgerrors.IsTransportError(err))
		}
	})
}

func TestTransportError(t *testing.T) {
	t.Run("unwrap", func(t *testing.T) {
		base := errors.New("connection refused")
		err := pkgerrors.NewTransportError("GET", "http://localhost/agent/providers", base)
		assert.Equal(t, base, err.Unwrap())
		assert.Contains(t, err.Error(), "connection refused")
		assert.True(t, pkgerrors.IsTransportError(err))
		assert.False(t, pkgerrors.IsRequestError(err))
	})

	t.Run("context errors stay visible", func(t *testing.T) {
		err := pkgerrors.WrapTransport("GET", "http://localhost", context.DeadlineExceeded)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))

		var transportErr *pkgerrors.TransportError
		require.True(t, errors.As(err, &transportErr))
		assert.Equal(t, "GET", transportErr.Method)
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapTransport("GET", "x", nil))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "api_url",
			Message:   "must be an absolute URL",
		}
		assert.Equal(t, "configuration error in api_url: must be an absolute URL", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without component", func(t *testing.T) {
		err := pkgerrors.NewConfigError("", "missing", nil)
		assert.Equal(t, "configuration error: missing", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		base := errors.New("bad scheme")
		err := pkgerrors.WrapConfig("api_url", base)
		assert.True(t, errors.Is(err, base))
		assert.Nil(t, pkgerrors.WrapConfig("api_url", nil))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with source", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Source:  "provider catalog",
			Message: "unexpected end of JSON input",
		}
		assert.Equal(t, "json parse error in provider catalog: unexpected end of JSON input", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "yaml", Message: "syntax error"}
		assert.Equal(t, "yaml parse error: syntax error", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		base := errors.New("EOF")
		wrapped := pkgerrors.WrapParse("json", "secrets status", base)
		var parseErr *pkgerrors.ParseError
		require.True(t, errors.As(wrapped, &parseErr))
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, "secrets status", parseErr.Source)
		assert.Equal(t, base, parseErr.Unwrap())
		assert.Nil(t, pkgerrors.WrapParse("json", "x", nil))
	})
}
