package lead

import (
	"fmt"
	"strings"
)

// ValidationError reports the required contact fields left empty at submit
// time. It blocks finalization and must surface a user-visible message; it is
// never swallowed silently.
type ValidationError struct {
	MissingFields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// NewValidationError creates a ValidationError for the given fields.
func NewValidationError(missing ...string) *ValidationError {
	return &ValidationError{MissingFields: missing}
}
