package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/models"
	"github.com/swarmlet/swarmlet/pkg/services"
)

// respondError maps service-layer errors to HTTP status codes and result
// envelopes. Cross-owner access surfaces as not found, never as forbidden.
func respondError(c *echo.Context, err error) error {
	status, env := mapError(err)
	return c.JSON(status, env)
}

func mapError(err error) (int, models.Envelope) {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		return domainErrorStatus(domainErr.Type), domainErr.Envelope()
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, models.Failure(models.ErrorTypeNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrInvalidInput) {
		return http.StatusBadRequest, models.Failure(models.ErrorTypeValidation, err.Error())
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, models.Failure(models.ErrorTypeValidation, "resource already exists")
	}
	if errors.Is(err, services.ErrAlreadyRevoked) {
		return http.StatusConflict, models.Failure(models.ErrorTypeValidation, "already revoked")
	}
	if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrEnrollTokenInvalid) {
		return http.StatusUnauthorized, models.Failure(models.ErrorTypeInvalidCredentials, "invalid credentials")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, models.Failure(models.ErrorTypeExecution, "internal server error")
}

func domainErrorStatus(errorType string) int {
	switch errorType {
	case models.ErrorTypeValidation:
		return http.StatusBadRequest
	case models.ErrorTypeNotFound:
		return http.StatusNotFound
	case models.ErrorTypeInvalidCredentials:
		return http.StatusUnauthorized
	case models.ErrorTypeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
