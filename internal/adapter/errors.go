package adapter

import (
	"errors"
)

// Status sentinels wrapped by [*APIError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx answer of the backend.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the normalized, human readable error shown to the operator.
	Message string

	sentinel error
}

// Error returns the normalized message.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the status sentinel, e.g. [ErrNotFound].
func (e *APIError) Unwrap() error {
	return e.sentinel
}

// Message returns the operator-facing text of err: the normalized backend
// message for an [*APIError], err.Error() otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
