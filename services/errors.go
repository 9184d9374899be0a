package services

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when a meal entry id does not exist for the
// requesting user. Callers treat it as non-fatal on delete paths.
var ErrEntryNotFound = errors.New("meal entry not found")

// ValidationError is a field-level rejection raised before any I/O.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
