package errors

import (
	"fmt"
)

// InvalidColorError reports an input that is not a recognized color representation.
type InvalidColorError struct {
	Input  string
	Reason string
	Err    error
}

// NewInvalidColorError constructs an InvalidColorError for the given input.
func NewInvalidColorError(input any, reason string, err error) error {
	return &InvalidColorError{Input: describeInput(input), Reason: reason, Err: err}
}

func (e *InvalidColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("invalid color %s: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid color %s", e.Input)
}

// Unwrap exposes the underlying error.
func (e *InvalidColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeInput(input any) string {
	switch v := input.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v (%T)", v, v)
	}
}

// ParseError represents a YAML parsing failure with optional line metadata.
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

// StaleOutputError indicates a generated file no longer matches its configuration.
type StaleOutputError struct {
	Path string
	Diff string
}

// NewStaleOutputError constructs a StaleOutputError carrying the rendered diff.
func NewStaleOutputError(path, diff string) error {
	return &StaleOutputError{Path: path, Diff: diff}
}

func (e *StaleOutputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("stale output: %s does not match its configuration", e.Path)
}
