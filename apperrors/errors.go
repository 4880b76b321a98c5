package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single input-shape violation: which field and why.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the full set of input-shape violations for one call.
// It is always raised before any persistence attempt, and always carries
// every violated field rather than just the first.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// BusinessError is a rule violation discovered against persisted state:
// not-found by id, duplicate email, illegal status transition. It carries a
// single human-readable message and leaves no writes behind.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError builds a BusinessError from a format string.
func NewBusinessError(format string, args ...interface{}) *BusinessError {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}

// AsValidation extracts a ValidationError from err, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsBusiness extracts a BusinessError from err, if it is one.
func AsBusiness(err error) (*BusinessError, bool) {
	var be *BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
