package apperr

import (
	"errors"
	"net/http"
)

// Error carries a client-safe message together with the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Internal wraps an unexpected failure. The wrapped error is for logs only;
// clients see the message.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// From extracts an *Error, or wraps err as an internal error with the given
// fallback message.
func From(err error, fallback string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(fallback, err)
}

// IsInternal reports whether the error maps to a 500.
func IsInternal(err error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status == http.StatusInternalServerError
	}
	return true
}
