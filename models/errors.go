package models

import "fmt"

// ErrorValidation is a missing or malformed input field.
type ErrorValidation struct{ Message string }

// ErrorConflict is a write blocked by existing dependents or duplicates.
type ErrorConflict struct{ Message string }

type ErrorNotFound struct{ Message string }

type ErrorUnauthorized struct{ Message string }

type ErrorForbidden struct{ Message string }

func (e ErrorValidation) Error() string   { return e.Message }
func (e ErrorConflict) Error() string     { return e.Message }
func (e ErrorNotFound) Error() string     { return e.Message }
func (e ErrorUnauthorized) Error() string { return e.Message }
func (e ErrorForbidden) Error() string    { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return ErrorValidation{Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) error {
	return ErrorConflict{Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return ErrorNotFound{Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorizedError(format string, args ...interface{}) error {
	return ErrorUnauthorized{Message: fmt.Sprintf(format, args...)}
}

func NewForbiddenError(format string, args ...interface{}) error {
	return ErrorForbidden{Message: fmt.Sprintf(format, args...)}
}
