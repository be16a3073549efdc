package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrUnauthorized is returned when no caller identity is present
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a resource is not found or not owned by the caller
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when the request conflicts with the current state
	ErrConflict = errors.New("resource conflict")

	ErrContactNotFound  = fmt.Errorf("contact %w", ErrNotFound)
	ErrGroupNotFound    = fmt.Errorf("group %w", ErrNotFound)
	ErrDraftNotFound    = fmt.Errorf("draft %w", ErrNotFound)
	ErrTemplateNotFound = fmt.Errorf("template %w", ErrNotFound)
	ErrEmailNotFound    = fmt.Errorf("email %w", ErrNotFound)

	// ErrMalformedImport is returned when an import file cannot be read or its header
	// does not resolve both a company and an email column
	ErrMalformedImport = fmt.Errorf("malformed import file: %w", ErrInvalidInput)

	// ErrInvalidTransition is returned when a status change would move an email backwards
	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrConflict)

	// ErrNotApproved is returned when a real send is requested for an unapproved email
	ErrNotApproved = fmt.Errorf("email is not approved: %w", ErrConflict)

	// ErrAlreadySent is returned when the same approval has already been dispatched
	ErrAlreadySent = fmt.Errorf("email already sent: %w", ErrConflict)

	// ErrSenderNotConfigured is returned when the profile has no sender email
	ErrSenderNotConfigured = fmt.Errorf("sender email is not configured: %w", ErrInvalidInput)

	// ErrNoSenderDomain is returned when a domain operation needs a registered domain
	ErrNoSenderDomain = fmt.Errorf("no sender domain registered: %w", ErrNotFound)
)

// Quota kinds
const (
	QuotaCredits = "credits"
	QuotaSends   = "sends"
)

// QuotaExceededError reports a request larger than what remains of a monthly allotment
type QuotaExceededError struct {
	Kind      string
	Requested int
	Remaining int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly %s quota exceeded: requested %d, remaining %d", e.Kind, e.Requested, e.Remaining)
}

// TransportError wraps a failure reported by the mail provider
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "mail transport failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
