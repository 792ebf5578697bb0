package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ErrNotFound covers both genuinely absent records and records owned by a
// different user. The two cases must be indistinguishable to the caller.
var ErrNotFound = errors.New("resource not found")

// ErrCategoryInUse is returned when a category delete is refused because
// transactions still reference it.
var ErrCategoryInUse = errors.New("category has existing transactions")

var ErrInvalidCategory = NewValidationError("Invalid category")
