package entity

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is matched by every ValidationError. Stores also wrap
// it when they refuse a document, e.g. a category reference that cannot be
// parsed as an identifier.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError names the article field that broke a constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid news: " + e.Message
	}
	return fmt.Sprintf("invalid news %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
