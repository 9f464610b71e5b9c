package utils

import (
	"errors"
	"fmt"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token has expired")
var ErrUnauthorized = errors.New("unauthorized")
var ErrNotFound = errors.New("not found")
var ErrReadOnly = errors.New("read-only access: editing is not permitted")
var ErrValueConversion = errors.New("could not convert value")

// ValidationError rejects a request before any store call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError rejects a delete whose preconditions do not hold.
// Count carries the number of blocking child records.
type ConflictError struct {
	Msg   string
	Count int
}

func NewConflictError(count int, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...), Count: count}
}

func (e *ConflictError) Error() string { return e.Msg }

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
