package rental

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the API answers success:false for a
// resource lookup (e.g. no payment recorded for a booking yet).
var ErrNotFound = errors.New("rental: not found")

// APIError is a rejection from the rental API: the request completed
// but the envelope carried success:false. The message is the backend's
// and is shown to the user verbatim unless a view pattern-matches it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rental api: %s (status %d)", e.Message, e.StatusCode)
}

// TransportError is a request that never completed: connection
// refused, timeout, malformed response. Always retryable.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rental: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsAvailabilityConflict reports whether err is the backend rejecting
// a booking because the car is no longer available. The backend
// signals this only through its message text.
func IsAvailabilityConflict(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(apiErr.Message, "not available for booking")
}

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
