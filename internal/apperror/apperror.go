package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("upstream error")
)

type AppError struct {
	Err      error  // sentinel the error classifies as
	Resource string // optional: what was being looked up or validated
	Message  string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:      ErrNotFound,
		Resource: resource,
		Message:  fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:      ErrValidation,
		Resource: field,
		Message:  message,
	}
}

// IsNotFound reports whether err is a not-found error for resource.
// An empty resource matches any not-found error.
func IsNotFound(err error, resource string) bool {
	if !errors.Is(err, ErrNotFound) {
		return false
	}
	if resource == "" {
		return true
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Resource == resource
}
