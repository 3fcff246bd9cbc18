package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single field failure. The zero value is not
// meaningful; errors are only created through Failure since the absence of
// an error is what success looks like.
type ValidationError struct {
	field   string
	message string
}

// Failure builds a ValidationError for field with the fully composed message.
func Failure(field, message string) ValidationError {
	return ValidationError{field: field, message: message}
}

func (e ValidationError) FieldName() string { return e.field }

// ErrorMessage returns the composed message, header included when enabled.
func (e ValidationError) ErrorMessage() string { return e.message }

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

func (e ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}{e.field, e.message})
}

// ValidationErrors is an ordered list of failures that satisfies error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.field == field {
			return true
		}
	}
	return false
}

// Get returns the messages reported for field, in report order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.field == field {
			messages = append(messages, err.message)
		}
	}
	return messages
}

// Fields returns the distinct failing field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.field] {
			fields = append(fields, err.field)
			seen[err.field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}
