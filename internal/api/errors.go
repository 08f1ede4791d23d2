package api

import (
	"errors"
	"fmt"
)

// ErrUnreachable marks transport failures: the request never got an HTTP
// response.
var ErrUnreachable = errors.New("backend unreachable")

// Error is a response the backend rejected with success=false.
type Error struct {
	Endpoint string
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Method string
	Path   string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: %s", e.Method, e.Path, e.Status)
}

// Message returns the server's message when err is an *Error, otherwise
// fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
