package validation

import (
	"errors"
	"strings"
)

// FieldError names one failing field of a request body. Field is "body" when
// the failure is not tied to a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned when a request body breaks one or more rules.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Has reports whether field is among the failing fields.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// add records the first failure of each field only.
func (e *Error) add(field, message string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Error) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsError unwraps err into a *Error.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
