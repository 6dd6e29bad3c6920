// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation    = errors.New("validation error")
	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyValue    = errors.New("value cannot be empty")
	ErrNegativeValue = errors.New("value cannot be negative")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidFormat = errors.New("invalid format")

	// Dependency errors
	ErrNilDependency = errors.New("dependency cannot be nil")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "pricing", "report"
	Op      string // Operation that failed, e.g., "Add", "Delete"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound    = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrInvalidStudentName = NewDomainError("student", "Validate", ErrInvalidInput, "invalid student name")
	ErrIndexOutOfRange    = NewDomainError("student", "Delete", ErrOutOfRange, "roster index out of range")
	ErrEmptyRoster        = NewDomainError("student", "Delete", ErrOutOfRange, "roster is empty")
)

// Pricing domain errors
var (
	ErrInvalidPrice   = NewDomainError("pricing", "Validate", ErrNegativeValue, "price cannot be negative")
	ErrNilStrategy    = NewDomainError("pricing", "ApplyDiscount", ErrNilDependency, "discount strategy is nil")
	ErrInvalidPercent = NewDomainError("pricing", "Validate", ErrOutOfRange, "discount percent must be between 0 and 100")
)

// Notification domain errors
var (
	ErrNilChannel     = NewDomainError("notification", "Notify", ErrNilDependency, "delivery channel is nil")
	ErrInvalidChannel = NewDomainError("notification", "Validate", ErrInvalidInput, "unknown channel type")
	ErrEmptyRecipient = NewDomainError("notification", "Validate", ErrEmptyValue, "recipient cannot be empty")
	ErrEmptyMessage   = NewDomainError("notification", "Validate", ErrEmptyValue, "message body cannot be empty")
)

// Logging domain errors
var (
	ErrNilLogger = NewDomainError("logging", "Record", ErrNilDependency, "logger is nil")
)
