// Package forms defines the records the client collects and the rules they
// are validated with. The dev backend validates with the same rules.
package forms

import "strings"

// FieldError is a user-facing validation failure on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors collects field errors in the order fields were checked.
type Errors []FieldError

func (errs Errors) Error() string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Field returns the first message recorded for field, or "".
func (errs Errors) Field(field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Err returns errs as an error, or nil when it is empty.
func (errs Errors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (errs *Errors) check(field string, err error) {
	if err != nil {
		*errs = append(*errs, FieldError{Field: field, Message: err.Error()})
	}
}
