package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "Task ID is required",
	StatusCode: http.StatusBadRequest,
}
