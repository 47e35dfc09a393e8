package config

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidYAML          = errors.New("invalid YAML syntax")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidValue         = errors.New("invalid field value")
)

// ValidationError names the offending setting as section.field, for
// example live.commit_mode.
type ValidationError struct {
	Section string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError creates a ValidationError.
func NewValidationError(section, field string, err error) *ValidationError {
	return &ValidationError{Section: section, Field: field, Err: err}
}

func missing(section, field string) error {
	return NewValidationError(section, field, ErrMissingRequiredField)
}

func invalid(section, field, format string, args ...any) error {
	return NewValidationError(section, field,
		fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...)))
}

// LoadError is returned when the configuration file exists but cannot be read
// or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
