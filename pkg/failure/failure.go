// Package failure defines the carryable failure value raised by deep call
// chains and converted into a response envelope at the boundary. It replaces
// ad-hoc metadata bags with explicit typed fields for the correlation
// reference and field-level validation errors.
package failure

import "errors"

// ErrValidation is the marker error for field-level validation failures.
// Boundaries match it with errors.Is and retrieve details via FieldsOf.
var ErrValidation = errors.New("validation failed")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Failure carries a human-readable message plus optional correlation
// reference and field errors. It is an ordinary error value: raised once,
// passed up the stack, never mutated after construction.
type Failure struct {
	message   string
	reference string
	fields    []FieldError
}

// New builds a failure with a message and an optional correlation reference.
func New(message, reference string) *Failure {
	return &Failure{message: message, reference: reference}
}

// Validation builds a failure carrying field-level errors. It unwraps to
// ErrValidation so boundaries can route it to a 400-shaped envelope.
func Validation(message string, fields []FieldError) *Failure {
	return &Failure{message: message, fields: fields}
}

func (f *Failure) Error() string {
	if f.message == "" {
		return "Error"
	}
	return f.message
}

// Unwrap exposes ErrValidation when field errors are attached.
func (f *Failure) Unwrap() error {
	if len(f.fields) > 0 {
		return ErrValidation
	}
	return nil
}

// Reference returns the correlation reference, empty when none was attached.
func (f *Failure) Reference() string { return f.reference }

// Fields returns the attached field errors, nil when none were attached.
func (f *Failure) Fields() []FieldError { return f.fields }

// ReferenceOf extracts a correlation reference from anywhere in an error
// chain, returning "" when none is carried.
func ReferenceOf(err error) string {
	if err == nil {
		return ""
	}
	type referencer interface{ Reference() string }
	var r referencer
	if errors.As(err, &r) {
		return r.Reference()
	}
	return ""
}

// FieldsOf extracts field errors from anywhere in an error chain, returning
// nil when the error carries none.
func FieldsOf(err error) []FieldError {
	if err == nil {
		return nil
	}
	type fielder interface{ Fields() []FieldError }
	var f fielder
	if errors.As(err, &f) {
		return f.Fields()
	}
	return nil
}
