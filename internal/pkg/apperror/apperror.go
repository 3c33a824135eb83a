package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication required")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrUpload     = errors.New("upload failed")
)

// AppError pairs a taxonomy sentinel with the message sent to the client.
// Anything that is not an AppError is treated as an internal error and
// never leaks detail past the operator logs.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func Auth(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return &AppError{Err: ErrAuth, Message: message}
}

func NotFound(resource string) *AppError {
	return &AppError{Err: ErrNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func Upload(message string) *AppError {
	if message == "" {
		message = "Image upload failed"
	}
	return &AppError{Err: ErrUpload, Message: message}
}
