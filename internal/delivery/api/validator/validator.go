// Package validator adapts go-playground/validator to echo and to the
// field-level validation error of the domain.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "allergo/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json (or query/form) name.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	return &Validator{validate: validate}
}

// Validate returns a VALIDATION_FAILED error listing every invalid field with
// its messages, in declaration order.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	index := make(map[string]int, len(validationErrs))
	for _, fe := range validationErrs {
		name := fieldPath(fe)
		if pos, ok := index[name]; ok {
			fields[pos].Messages = append(fields[pos].Messages, message(fe))

			continue
		}
		index[name] = len(fields)
		fields = append(fields, domainerrors.FieldError{Field: name, Messages: []string{message(fe)}})
	}

	return domainerrors.NewValidationError(fields)
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

// fieldPath drops the struct name from the namespace ("req.ingredients[0]" -> "ingredients[0]").
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " should not be empty"
	case "email":
		return fe.Field() + " must be an email"
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("%s must contain at least %s elements", fe.Field(), fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be longer than or equal to %s characters", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must not be greater than %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return fe.Field() + " must be a URL"
	default:
		return fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag())
	}
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}
