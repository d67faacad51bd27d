package errors

import (
	"net/http"
	"testing"

	"allergo/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopiesByCode(t *testing.T) {
	withDetails := ErrInvalidOTP.WithDetails("code")

	assert.True(t, errors.Is(withDetails, ErrInvalidOTP))
	assert.True(t, errors.Is(errors.Wrap(withDetails, "verify"), ErrInvalidOTP))
	assert.False(t, errors.Is(withDetails, ErrOTPExpired))
}

func TestNewValidationError_NamesFields(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "email", Messages: []string{"must be a valid email"}},
		{Field: "password", Messages: []string{"must be at least 8 characters"}},
		{Field: "name", Messages: []string{"is required"}},
	})

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "email, password and name field is invalid", err.Message())
	assert.Len(t, err.Details(), 3)
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestNewFieldError_SingleField(t *testing.T) {
	err := NewFieldError("alergens", "unknown ingredient")

	assert.Equal(t, "alergens field is invalid", err.Message())
	assert.Equal(t, []FieldError{{Field: "alergens", Messages: []string{"unknown ingredient"}}}, err.Details())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create session")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "failed to create session")
}
