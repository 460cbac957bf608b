package errors

import "fmt"

// HTTPError carries an error code and user-facing message through the
// delivery layer. Codes in the 100-599 range double as the HTTP status;
// larger codes are domain codes and map to 400.
type HTTPError struct {
	ErrorCode int
	Message   string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{ErrorCode: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.ErrorCode, e.Message)
}

// StatusCode returns the HTTP status to respond with.
func (e *HTTPError) StatusCode() int {
	if e.ErrorCode >= 100 && e.ErrorCode < 600 {
		return e.ErrorCode
	}
	return 400
}
