package types

import (
	"fmt"
	"net/http"
)

// Error is the single error kind surfaced by every SDK operation. It covers
// local validation failures (no status code), server-reported failures
// (status code plus the server's message or a generic fallback), the
// synthesized 404 on a status lookup that returned no transaction, and
// transport-level failures (no status code, wrapped cause).
type Error struct {
	// Message describes the failure: the server's "message" field when one
	// was returned, otherwise locally produced text.
	Message string
	// StatusCode is the HTTP status of a server-reported failure. It is 0
	// when the failure happened without an HTTP response (local validation,
	// transport errors).
	StatusCode int

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fapshi: %s (status %d)", e.Message, e.StatusCode)
	}
	return "fapshi: " + e.Message
}

// Unwrap returns the transport-level cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// NewValidationError reports a request rejected locally, before any HTTP
// call was attempted.
func NewValidationError(message string) *Error {
	return &Error{Message: message}
}

// NewStatusError maps a non-2xx response to an Error, preferring the
// server-supplied message over the generic status text.
func NewStatusError(statusCode int, serverMessage string) *Error {
	msg := serverMessage
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	if msg == "" {
		msg = "request failed"
	}
	return &Error{Message: msg, StatusCode: statusCode}
}

// NewNetworkError reports a request that failed before an HTTP response
// arrived (DNS, connection, timeout). The cause remains reachable through
// errors.Is/As via Unwrap.
func NewNetworkError(cause error) *Error {
	return &Error{Message: "network error: " + cause.Error(), cause: cause}
}
