// Package util provides utility functions and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for run-terminating failures
var (
	ErrMissingInput     = errors.New("mandatory input file missing")
	ErrMalformedLine    = errors.New("malformed input line")
	ErrUnreadableInput  = errors.New("input unreadable")
	ErrOutputWrite      = errors.New("output write failed")
	ErrWorkbookBusy     = errors.New("workbook locked by another run")
	ErrValidationFailed = errors.New("validation failed")
)

// MissingInputError reports a mandatory source that does not exist
type MissingInputError struct {
	Source string
	Path   string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing %s input: %s", e.Source, e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// NewMissingInputError creates a missing input error
func NewMissingInputError(source, path string) *MissingInputError {
	return &MissingInputError{Source: source, Path: path}
}

// MalformedLineError reports a line with fewer tokens than its format requires.
// Line is the 1-based physical line number in the source.
type MalformedLineError struct {
	Source string
	Line   int
	Tokens int
	Want   int
	Text   string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s line %d: got %d fields, need at least %d: %q",
		e.Source, e.Line, e.Tokens, e.Want, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// NewMalformedLineError creates a malformed line error
func NewMalformedLineError(source string, line, tokens, want int, text string) *MalformedLineError {
	return &MalformedLineError{
		Source: source,
		Line:   line,
		Tokens: tokens,
		Want:   want,
		Text:   text,
	}
}

// OutputWriteError reports a failure creating or appending the workbook.
// Sheet is the run timestamp, so the message says exactly what to retry.
type OutputWriteError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing sheet %s to %s: %v", e.Sheet, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() []error {
	return []error{ErrOutputWrite, e.Err}
}

// NewOutputWriteError creates an output write error
func NewOutputWriteError(path, sheet string, err error) *OutputWriteError {
	return &OutputWriteError{Path: path, Sheet: sheet, Err: err}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
