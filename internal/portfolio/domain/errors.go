package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable marks failures where the backing store cannot be reached
	// or its tables are missing. Callers surface it as a 500 and do not retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidBody is returned when the request body is not a JSON object.
	ErrInvalidBody = errors.New("invalid request body")
)

// ValidationError identifies the first input field that failed its rule.
// Field is a dotted path such as "title" or "tags.2".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
