package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an unknown record id. Lookups and mutations return it
// without side effects.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected input (missing required field, bad
// type). Nothing has been written when it is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
