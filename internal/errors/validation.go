package errors

import "net/http"

// ValidationError rejects a request whose fields are malformed or out of
// range.
func ValidationError(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
