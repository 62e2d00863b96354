package httputil

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
	ErrValidation       = errors.New("the request body contains invalid values")
)

// ValidationError lists the problems with the request body per field.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, e.Fields[k])
	}

	return ErrValidation.Error() + ": " + strings.Join(messages, ", ")
}

func (e ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldErrors returns the field errors for err if it is a ValidationError.
func FieldErrors(err error) map[string]string {
	var v ValidationError
	if errors.As(err, &v) {
		return v.Fields
	}

	return nil
}
