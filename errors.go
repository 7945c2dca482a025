package mailgun

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingDomain is returned when no sending domain is provided.
	ErrMissingDomain = errors.New("domain is required")
)

// Error is implemented by all SDK errors.
type Error interface {
	error
	MailgunError() // marker method
}

// ParamError is returned when a parameter value cannot be serialized.
// Currently only the structured recipient-variables parameter can fail
// this way. It is surfaced before any network activity occurs.
type ParamError struct {
	Key string
	Err error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %q contains invalid JSON: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParamError) Unwrap() error {
	return e.Err
}

// MailgunError implements the Error interface.
func (e *ParamError) MailgunError() {}

// TransportError is returned when the HTTP call or the response body read
// fails at the transport level, before any status classification.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MailgunError implements the Error interface.
func (e *TransportError) MailgunError() {}

// APIError is returned when the service responds with a non-200 status and
// a recognizable structured error body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// MailgunError implements the Error interface.
func (e *APIError) MailgunError() {}

// HTTPError is returned when the service responds with a non-200 status
// and a body that matches neither known error shape. The raw body is kept
// verbatim.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// MailgunError implements the Error interface.
func (e *HTTPError) MailgunError() {}

// ParseError is returned when a success response body cannot be decoded
// into the endpoint's declared response shape. It usually means the
// service contract changed out from under the client.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MailgunError implements the Error interface.
func (e *ParseError) MailgunError() {}
