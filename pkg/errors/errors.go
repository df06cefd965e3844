// Package errors provides custom error types for the providerkeys system.
// These errors let callers tell a backend that answered with a failure status
// apart from a backend that could not be reached at all, and check either
// programmatically with errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the providerkeys system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrRequestFailed indicates that the backend answered with a non-success status
	ErrRequestFailed = errors.New("request failed")

	// ErrTransport indicates that the backend could not be reached
	ErrTransport = errors.New("transport failure")

	// ErrUnauthorized indicates that the backend rejected the secret key
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendUnavailable indicates that the backend reported a server-side failure
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// RequestError is returned when the backend responds with a non-2xx status.
// Message is the text surfaced to callers: the HTTP status text for the
// provider catalog, a fixed message for the secrets status endpoint.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Status     string // HTTP status text, e.g. "Internal Server Error"
	Message    string
	Body       string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Status
	}
	if e.Endpoint != "" {
		return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Endpoint, e.StatusCode, msg)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, msg)
}

// Is implements errors.Is support
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrBackendUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// NewRequestError creates a RequestError from a status code.
// Message defaults to the status text when empty.
func NewRequestError(method, endpoint string, statusCode int, message string) *RequestError {
	status := http.StatusText(statusCode)
	if message == "" {
		message = status
	}
	return &RequestError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Status:     status,
		Message:    message,
	}
}

// TransportError represents a network-level failure surfaced by the HTTP client,
// such as a refused connection, a timeout or a canceled context.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// NewTransportError creates a new TransportError
func NewTransportError(method, endpoint string, err error) *TransportError {
	return &TransportError{Method: method, Endpoint: endpoint, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	Source  string // what was being parsed, e.g. "provider catalog"
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s parse error in %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRequestError checks if an error came from a non-success backend status
func IsRequestError(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

// IsTransportError checks if an error came from a network-level failure
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsUnauthorized checks if the backend rejected the secret key
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsBackendUnavailable checks if the backend reported a server-side failure
func IsBackendUnavailable(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}

// Helper wrapping functions for common patterns

// WrapTransport wraps an error as a TransportError
func WrapTransport(method, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return NewTransportError(method, endpoint, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}
