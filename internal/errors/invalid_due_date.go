package errors

import "net/http"

var ErrInvalidDueDate = &Exception{
	Message:    "Invalid due date format",
	StatusCode: http.StatusBadRequest,
}
