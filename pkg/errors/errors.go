package errors

import (
	"fmt"
)

// ParseError represents a config decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PreconditionError reports a host integration defect that prevents the
// stopwatch from starting at all, such as a missing clock or renderer.
type PreconditionError struct {
	Component string
	Message   string
	Err       error
}

// NewPreconditionError constructs a PreconditionError for the named component.
func NewPreconditionError(component, message string, err error) error {
	return &PreconditionError{Component: component, Message: message, Err: err}
}

func (e *PreconditionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("precondition failed [%s]: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("precondition failed: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PreconditionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
