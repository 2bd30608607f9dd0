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
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")

	// State errors
	ErrInvalidState    = errors.New("invalid state")
	ErrStateTransition = errors.New("invalid state transition")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "tutor", "request", "chat"
	Op      string // Operation that failed, e.g., "Assign", "SendMessage"
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

// Tutor domain errors
var (
	ErrTutorNotFound      = NewDomainError("tutor", "Find", ErrNotFound, "tutor not found")
	ErrTutorAlreadyExists = NewDomainError("tutor", "Create", ErrAlreadyExists, "tutor already exists")
	ErrTutorNotApproved   = NewDomainError("tutor", "CheckStatus", ErrInvalidState, "tutor is not approved")
	ErrInvalidTutorStatus = NewDomainError("tutor", "Moderate", ErrStateTransition, "invalid tutor status transition")
)

// Request domain errors
var (
	ErrRequestNotFound      = NewDomainError("request", "Find", ErrNotFound, "student request not found")
	ErrRequestAlreadyClosed = NewDomainError("request", "Assign", ErrInvalidState, "student request is closed")
)

// Chat domain errors
var (
	ErrSessionNotFound  = NewDomainError("chat", "Find", ErrNotFound, "chat session not found")
	ErrNotParticipant   = NewDomainError("chat", "SendMessage", ErrForbidden, "sender is not a session participant")
	ErrSelfConversation = NewDomainError("chat", "Create", ErrInvalidInput, "cannot open a session with yourself")
)

// User domain errors
var (
	ErrUserNotFound      = NewDomainError("user", "Find", ErrNotFound, "user not found")
	ErrUserAlreadyExists = NewDomainError("user", "Create", ErrAlreadyExists, "user already exists")
	ErrInvalidUserStatus = NewDomainError("user", "Moderate", ErrStateTransition, "invalid user status transition")
)
