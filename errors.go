package fapshi

import (
	"errors"
	"net/http"

	"github.com/Fapshi/fapshi-go/internal/types"
)

// Error is the one error kind the SDK produces. StatusCode is zero when the
// failure never reached the service (local validation, transport error).
type Error = types.Error

// AsError extracts the SDK error from err, unwrapping as needed.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsNotFound reports whether err is the service's not-found answer, such as
// a payment-status lookup for an unknown transaction id.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.StatusCode == http.StatusNotFound
}
