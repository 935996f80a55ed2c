package models

import "fmt"

// DomainError is an error carrying an error type from the closed set plus
// a message safe to show to users. Services and tools return it; the API
// layer and the supervisor convert it to an Envelope.
type DomainError struct {
	Type        string
	UserMessage string
	Details     map[string]any
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.UserMessage)
}

// Envelope converts the error to a failed result envelope.
func (e *DomainError) Envelope() Envelope {
	return FailureWithDetails(e.Type, e.UserMessage, e.Details)
}

// NewValidationError builds a validation_error with a formatted message.
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{Type: ErrorTypeValidation, UserMessage: fmt.Sprintf(format, args...)}
}

// NewExecutionError builds an execution_error with a formatted message.
func NewExecutionError(format string, args ...any) *DomainError {
	return &DomainError{Type: ErrorTypeExecution, UserMessage: fmt.Sprintf(format, args...)}
}

// NewNotFoundError builds a not_found error with a formatted message.
func NewNotFoundError(format string, args ...any) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, UserMessage: fmt.Sprintf(format, args...)}
}

// NewRateLimitedError builds a rate_limited error with a formatted message.
func NewRateLimitedError(format string, args ...any) *DomainError {
	return &DomainError{Type: ErrorTypeRateLimited, UserMessage: fmt.Sprintf(format, args...)}
}

// NewInvalidCredentialsError builds an invalid_credentials error.
func NewInvalidCredentialsError(format string, args ...any) *DomainError {
	return &DomainError{Type: ErrorTypeInvalidCredentials, UserMessage: fmt.Sprintf(format, args...)}
}
