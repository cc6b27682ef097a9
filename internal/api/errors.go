package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is wrapped into every 401 error so callers can use
// errors.Is without inspecting status codes.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is wrapped into every 404 error.
var ErrNotFound = errors.New("not found")

// Error is an HTTP-status failure from the backend, carrying the server's
// message when the response envelope provided one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps well-known status codes onto sentinel errors.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func newError(status int, message string) *Error {
	return &Error{StatusCode: status, Message: message}
}
