package api

import (
	"errors"
	"fmt"
)

// Kind classifies a normalized API failure.
type Kind int

const (
	// KindNetwork is a transport-level failure (no HTTP response).
	KindNetwork Kind = iota

	// KindUnauthorized is a 401/403 response.
	KindUnauthorized

	// KindNotFound is a 404 response.
	KindNotFound

	// KindServerRejected is any other non-2xx response.
	KindServerRejected
)

// Error is the uniform error shape for all gateway failures.
// Status is zero for KindNetwork.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	default:
		return e.Message
	}
}

// IsUnauthorized reports whether err is a 401/403-class gateway error.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a 404-class gateway error.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsNetwork reports whether err is a transport-level gateway error.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}
