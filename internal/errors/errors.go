// Package errors provides centralized error definitions and error handling utilities
// for Dialogorithm. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent failures of a specific stage:
//   - EmptyInputError: the phone number contained no digits at all
//   - RenderError: the external typesetting/rasterizing toolchain failed
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found (country label, digit collection)
//   - ValidationError: invalid user input (missing country, too few/many digits)
//   - TimeoutError: a bounded external call ran out of time
//
// # Usage
//
//	err := errors.NewRenderError("pdflatex", "compile failed", cause).
//	    WithExitCode(1).WithOutput(stdout)
//
//	if errors.Is(err, errors.ErrRenderFailed) { ... }
//
//	var renderErr *errors.RenderError
//	if errors.As(err, &renderErr) {
//	    fmt.Println(renderErr.Output)
//	}
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Retryable: transient errors that may succeed on retry
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Info, Warning, Error, Critical
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Input-related sentinel errors
var (
	// ErrEmptyInput indicates that a phone number contained no digits.
	ErrEmptyInput = New("phone number contains no digits")
	// ErrMissingCountry indicates that no country was selected.
	ErrMissingCountry = New("no country selected")
	// ErrTooShort indicates that the local number is below the minimum length.
	ErrTooShort = New("local number too short")
	// ErrTooLong indicates that the local number exceeds the country's digit limit.
	ErrTooLong = New("local number too long")
)

// Composition-related sentinel errors
var (
	// ErrUniquenessExhausted indicates that no unused expression could be drawn
	// for a digit. Only returned when strict uniqueness is requested.
	ErrUniquenessExhausted = New("expression uniqueness exhausted")
)

// Rendering-related sentinel errors
var (
	// ErrRenderFailed indicates that the typesetting toolchain failed.
	ErrRenderFailed = New("render failed")
	// ErrArtifactMissing indicates that a tool exited cleanly but produced no output file.
	ErrArtifactMissing = New("render artifact missing")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// DialogorithmError is the base interface for all Dialogorithm errors.
type DialogorithmError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// EmptyInputError is returned when a phone number has no digits left after
// stripping formatting characters.
//
// Example:
//
//	err := errors.NewEmptyInputError("+ ( ) -")
//	fmt.Println(err) // "empty input: phone number contains no digits (input: "+ ( ) -")"
type EmptyInputError struct {
	baseError
	Input string
}

// NewEmptyInputError creates a new EmptyInputError for the raw input.
func NewEmptyInputError(input string) *EmptyInputError {
	return &EmptyInputError{
		baseError: baseError{
			message:    ErrEmptyInput.Error(),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		Input: input,
	}
}

// Error returns the formatted error message.
func (e *EmptyInputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("empty input: %s", e.message)
	}
	return fmt.Sprintf("empty input: %s (input: %q)", e.message, e.Input)
}

// Is checks if this error matches the target.
func (e *EmptyInputError) Is(target error) bool {
	if _, ok := target.(*EmptyInputError); ok {
		return true
	}
	if target == ErrEmptyInput || target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// RenderError represents a failure of the external typesetting toolchain.
// Output carries the tool's captured diagnostic output verbatim.
//
// Example:
//
//	err := errors.NewRenderError("pdflatex", "compile failed", cause)
//	err = err.WithExitCode(1).WithOutput("! Undefined control sequence.")
type RenderError struct {
	baseError
	Tool     string
	ExitCode int
	Output   string
}

// NewRenderError creates a new RenderError.
func NewRenderError(tool, message string, cause error) *RenderError {
	return &RenderError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  IsRetryable(cause),
			userFacing: true,
		},
		Tool:     tool,
		ExitCode: -1, // -1 indicates not set
	}
}

// WithExitCode adds the tool's exit code to the error context.
func (e *RenderError) WithExitCode(code int) *RenderError {
	e.ExitCode = code
	return e
}

// WithOutput adds the tool's captured output to the error context.
func (e *RenderError) WithOutput(output string) *RenderError {
	e.Output = output
	return e
}

// WithSeverity sets the error severity.
func (e *RenderError) WithSeverity(s Severity) *RenderError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *RenderError) Error() string {
	var parts []string
	if e.Tool != "" {
		parts = append(parts, fmt.Sprintf("tool=%s", e.Tool))
	}
	if e.ExitCode >= 0 {
		parts = append(parts, fmt.Sprintf("exit=%d", e.ExitCode))
	}

	prefix := "render error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("render error [%s]", strings.Join(parts, ", "))
	}

	msg := e.message
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	if e.Output != "" {
		msg = fmt.Sprintf("%s\ntool output: %s", msg, e.Output)
	}

	return fmt.Sprintf("%s: %s", prefix, msg)
}

// Is checks if this error matches the target.
func (e *RenderError) Is(target error) bool {
	if _, ok := target.(*RenderError); ok {
		return true
	}
	if target == ErrRenderFailed {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("country", "Atlantis")
//	fmt.Println(err) // "country 'Atlantis' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("local number needs at least 4 digits")
//	err = err.WithField("local_number").WithValue("123").WithCause(errors.ErrTooShort)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Message returns the bare, user-facing message without field context.
func (e *ValidationError) Message() string {
	return e.message
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError represents an operation that timed out.
//
// Example:
//
//	err := errors.NewTimeoutError("pdflatex compile", 30*time.Second)
//	fmt.Println(err) // "timeout error: pdflatex compile (timeout: 30s)"
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:    operation,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
		Operation: operation,
		Duration:  duration,
	}
}

// WithCause adds a cause to the error.
func (e *TimeoutError) WithCause(cause error) *TimeoutError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *TimeoutError) Error() string {
	base := fmt.Sprintf("timeout error: %s (timeout: %s)", e.Operation, e.Duration)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", base, e.cause)
	}
	return base
}

// Is checks if this error matches the target.
func (e *TimeoutError) Is(target error) bool {
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	if errors.Is(target, ErrTimeout) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var dErr DialogorithmError
	if As(err, &dErr) {
		return dErr.IsRetryable()
	}

	return false
}

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    displayToUser(err.Error())
//	} else {
//	    displayToUser("An internal error occurred")
//	    log.Error("internal error", "err", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var dErr DialogorithmError
	if As(err, &dErr) {
		return dErr.IsUserFacing()
	}

	return false
}

// IsInputError reports whether err is one of the user input failures
// (empty number, missing country, digit count out of bounds).
func IsInputError(err error) bool {
	if err == nil {
		return false
	}

	var empty *EmptyInputError
	var validation *ValidationError
	return As(err, &empty) || As(err, &validation)
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement DialogorithmError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var dErr DialogorithmError
	if As(err, &dErr) {
		return dErr.Severity()
	}

	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
