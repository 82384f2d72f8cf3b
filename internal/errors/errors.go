package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// HasStatus reports whether err carries the given HTTP status code.
func HasStatus(err error, statusCode int) bool {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode == statusCode
	}
	return false
}

func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}
