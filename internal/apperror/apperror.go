package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Controllers map these onto HTTP statuses; services never
// retry either of them.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// Error carries a kind sentinel, a caller-facing message and an optional
// underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause so storage errors stay inspectable.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches against the kind sentinel.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// NewNotFound wraps err as a not-found error.
func NewNotFound(msg string, err error) error {
	return &Error{Kind: ErrNotFound, Message: msg, Err: err}
}

// NewValidation wraps err as a validation error.
func NewValidation(msg string, err error) error {
	return &Error{Kind: ErrValidation, Message: msg, Err: err}
}

func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
