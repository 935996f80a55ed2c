// Package models holds the wire-level types shared by the API surface,
// the supervisor tools, and the worker dispatcher: the uniform result
// envelope and the domain error taxonomy behind it.
package models

// Error types form a closed set. Anything a tool, handler, or service
// reports to a client must be one of these; unknown strings are coerced
// to ErrorTypeExecution at the envelope boundary.
const (
	ErrorTypeValidation             = "validation_error"
	ErrorTypeExecution              = "execution_error"
	ErrorTypeRateLimited            = "rate_limited"
	ErrorTypeConnectorNotConfigured = "connector_not_configured"
	ErrorTypeInvalidCredentials     = "invalid_credentials"
	ErrorTypeNotFound               = "not_found"
	ErrorTypeMissingContext         = "missing_context"
)

var validErrorTypes = map[string]bool{
	ErrorTypeValidation:             true,
	ErrorTypeExecution:              true,
	ErrorTypeRateLimited:            true,
	ErrorTypeConnectorNotConfigured: true,
	ErrorTypeInvalidCredentials:     true,
	ErrorTypeNotFound:               true,
	ErrorTypeMissingContext:         true,
}

// IsValidErrorType reports whether t belongs to the closed error type set.
func IsValidErrorType(t string) bool {
	return validErrorTypes[t]
}

// Envelope is the uniform success/failure wrapper. Success carries data;
// failure carries a machine-readable error_type from the closed set and a
// human-readable user_message.
type Envelope struct {
	OK          bool           `json:"ok"`
	Data        any            `json:"data,omitempty"`
	ErrorType   string         `json:"error_type,omitempty"`
	UserMessage string         `json:"user_message,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
}

// Success wraps data in a successful envelope.
func Success(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

// Failure builds a failed envelope. An errorType outside the closed set
// is coerced to execution_error so clients never see unknown types.
func Failure(errorType, userMessage string) Envelope {
	if !IsValidErrorType(errorType) {
		errorType = ErrorTypeExecution
	}
	return Envelope{OK: false, ErrorType: errorType, UserMessage: userMessage}
}

// FailureWithDetails is Failure with a structured details map attached.
func FailureWithDetails(errorType, userMessage string, details map[string]any) Envelope {
	e := Failure(errorType, userMessage)
	e.Details = details
	return e
}
