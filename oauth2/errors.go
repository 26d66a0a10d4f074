package oauth2

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField is returned when a required parameter is absent or empty.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrInvalidEnumValue is returned when a closed-vocabulary parameter holds an unknown value.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrTypeMismatch is returned when a value cannot be coerced to the expected type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrUnexpectedField is returned by the Validator when a grant specific
	// parameter is sent with a different grant_type.
	ErrUnexpectedField = errors.New("unexpected field")
	// ErrUnsupportedValue is returned by the Validator for a well-formed value the
	// provider does not advertise. It always accompanies ErrInvalidEnumValue.
	ErrUnsupportedValue = errors.New("not supported by provider")
)

// FieldError describes a single parameter that failed validation.
// Kind is one of the sentinel errors above, so callers can use errors.Is.
type FieldError struct {
	Field string
	Kind  error
	Value string
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case ErrMissingRequiredField:
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	case ErrUnexpectedField:
		return fmt.Sprintf("%s: %s is not allowed here", e.Kind, e.Field)
	default:
		return fmt.Sprintf("%s: %s=%q", e.Kind, e.Field, e.Value)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func missingField(field string) error {
	return &FieldError{Field: field, Kind: ErrMissingRequiredField}
}

func invalidEnum(field, value string) error {
	return &FieldError{Field: field, Kind: ErrInvalidEnumValue, Value: value}
}

func unsupportedValue(field, value string) error {
	return fmt.Errorf("%w: %w", ErrUnsupportedValue, invalidEnum(field, value))
}

func typeMismatch(field, value string) error {
	return &FieldError{Field: field, Kind: ErrTypeMismatch, Value: value}
}

func unexpectedField(field string) error {
	return &FieldError{Field: field, Kind: ErrUnexpectedField}
}

// FieldOf returns the name of the offending field when err is (or wraps) a *FieldError.
func FieldOf(err error) (string, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field, true
	}
	return "", false
}
