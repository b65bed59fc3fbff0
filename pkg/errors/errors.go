package errors

import "fmt"

// HTTPError is an error that carries the HTTP status code it should be
// surfaced with. Delivery layers map domain errors into HTTPError; the
// response package reads the code back when writing the body.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status to respond with.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

// NewValidationError is a convenience constructor for 400 responses.
func NewValidationError(format string, args ...any) *HTTPError {
	return &HTTPError{Code: 400, Message: fmt.Sprintf(format, args...)}
}
