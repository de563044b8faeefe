package scoring

import (
	"fmt"
	"strings"
)

// ParseError is returned when the scoring response is not valid JSON.
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError is returned when the scoring response is valid JSON
// but lacks required keys or carries values of the wrong type.
type MalformedResponseError struct {
	Errors []FieldError
}

// FieldError is a single structural problem at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *MalformedResponseError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "model response has an unexpected structure: " + strings.Join(parts, "; ")
}
