// Package errors defines the HTTP error shape returned to API clients.
package errors

import (
	"fmt"
	"net/http"
)

// FieldError describes one invalid input value.
//
//	{"loc": ["body", "price"], "msg": "field required", "type": "missing"}
type FieldError struct {
	Location []string `json:"loc"`
	Message  string   `json:"msg"`
	Type     string   `json:"type"`
}

// HTTPError is an error that knows which status code to answer with.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    []FieldError
}

func (e *HTTPError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %d invalid field(s)", e.Message, len(e.Details))
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError returns a 422 carrying the offending fields.
func NewValidationError(details ...FieldError) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    MsgValidationFailed,
		Details:    details,
	}
}

const MsgValidationFailed = "validation failed"

var (
	ErrNotFound         = NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	ErrTooManyRequests  = NewHTTPError(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
)
