package usecase

import (
	"github.com/swaggest/usecase/status"
)

// Messages exposed to clients.
const (
	msgInvalidTask  = "Name and date are required"
	msgTaskNotFound = "Task not found"
	msgFetchFailed  = "Failed to fetch tasks"
	msgAddFailed    = "Failed to add task"
	msgUpdateFailed = "Failed to update task"
	msgDeleteFailed = "Failed to delete task"
	msgTokenFailed  = "Failed to generate token"
)

// Error is a use case failure with a message that is safe to expose.
//
// Cause is kept for logs and error chain inspection.
type Error struct {
	Code    status.Code
	Message string
	Cause   error
}

// Error implements error.
func (e Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns cause.
func (e Error) Unwrap() error {
	return e.Cause
}

// Status returns canonical status code.
func (e Error) Status() status.Code {
	return e.Code
}

// ErrResponse is a JSON body of error response.
type ErrResponse struct {
	Error string `json:"error" description:"Error message."`
}

func fail(code status.Code, message string, cause error) error {
	return Error{Code: code, Message: message, Cause: cause}
}
