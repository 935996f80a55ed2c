package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	env := Success(map[string]string{"run_id": "r-1"})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["ok"])
	assert.NotContains(t, decoded, "error_type")
	assert.NotContains(t, decoded, "user_message")
}

func TestFailureEnvelope(t *testing.T) {
	env := Failure(ErrorTypeNotFound, "run not found")
	assert.False(t, env.OK)
	assert.Equal(t, ErrorTypeNotFound, env.ErrorType)
	assert.Equal(t, "run not found", env.UserMessage)
}

func TestFailureCoercesUnknownErrorType(t *testing.T) {
	env := Failure("made_up_error", "boom")
	assert.Equal(t, ErrorTypeExecution, env.ErrorType)
}

func TestFailureWithDetails(t *testing.T) {
	env := FailureWithDetails(ErrorTypeValidation, "bad command", map[string]any{"command": "rm"})
	assert.Equal(t, "rm", env.Details["command"])
}

func TestIsValidErrorType(t *testing.T) {
	for _, et := range []string{
		ErrorTypeValidation, ErrorTypeExecution, ErrorTypeRateLimited,
		ErrorTypeConnectorNotConfigured, ErrorTypeInvalidCredentials,
		ErrorTypeNotFound, ErrorTypeMissingContext,
	} {
		assert.True(t, IsValidErrorType(et), et)
	}
	assert.False(t, IsValidErrorType("surprise_error"))
}

func TestDomainErrorEnvelope(t *testing.T) {
	err := NewValidationError("command %q is destructive", "rm")
	assert.Equal(t, `validation_error: command "rm" is destructive`, err.Error())

	env := err.Envelope()
	assert.False(t, env.OK)
	assert.Equal(t, ErrorTypeValidation, env.ErrorType)
}
