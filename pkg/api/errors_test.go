package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swarmlet/swarmlet/pkg/models"
	"github.com/swarmlet/swarmlet/pkg/services"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantType:   models.ErrorTypeNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("loading run: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantType:   models.ErrorTypeNotFound,
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: name is required", services.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeValidation,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantType:   models.ErrorTypeValidation,
		},
		{
			name:       "already revoked",
			err:        services.ErrAlreadyRevoked,
			wantStatus: http.StatusConflict,
			wantType:   models.ErrorTypeValidation,
		},
		{
			name:       "invalid credentials",
			err:        services.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantType:   models.ErrorTypeInvalidCredentials,
		},
		{
			name:       "enroll token invalid",
			err:        services.ErrEnrollTokenInvalid,
			wantStatus: http.StatusUnauthorized,
			wantType:   models.ErrorTypeInvalidCredentials,
		},
		{
			name:       "domain validation error",
			err:        models.NewValidationError("command uses a disallowed binary"),
			wantStatus: http.StatusBadRequest,
			wantType:   models.ErrorTypeValidation,
		},
		{
			name:       "domain not found error",
			err:        models.NewNotFoundError("runner %s not found", "r-1"),
			wantStatus: http.StatusNotFound,
			wantType:   models.ErrorTypeNotFound,
		},
		{
			name:       "domain rate limited error",
			err:        models.NewRateLimitedError("try later"),
			wantStatus: http.StatusTooManyRequests,
			wantType:   models.ErrorTypeRateLimited,
		},
		{
			name:       "unexpected error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantType:   models.ErrorTypeExecution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, env.OK)
			assert.Equal(t, tt.wantType, env.ErrorType)
			assert.NotEmpty(t, env.UserMessage)
		})
	}
}

func TestMapErrorHidesInternals(t *testing.T) {
	_, env := mapError(errors.New("pq: connection refused at 10.0.0.5"))
	assert.Equal(t, "internal server error", env.UserMessage)
}
