package errors

import "strings"

// FieldError lists the validation failures of one input field.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"message"`
}

// NewValidationError builds a VALIDATION_FAILED error whose message names the
// offending fields ("email, password and name field is invalid") and whose
// details carry the per-field messages.
func NewValidationError(fields []FieldError) *BaseError {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}

	err := ErrValidationFailed.WithDetails(fields)
	if len(names) > 0 {
		err.message = joinFieldNames(names) + " field is invalid"
	}

	return err
}

// NewFieldError is shorthand for a single-field validation failure.
func NewFieldError(field, message string) *BaseError {
	return NewValidationError([]FieldError{{Field: field, Messages: []string{message}}})
}

func joinFieldNames(names []string) string {
	if len(names) == 1 {
		return names[0]
	}

	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
