package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/models"
)

// createEnrollTokenHandler handles POST /api/runners/enroll-token. The
// token is single-use and short-lived; the runner redeems it on register.
func (s *Server) createEnrollTokenHandler(c *echo.Context) error {
	token, expiresAt := s.runners.CreateEnrollToken(ownerID(c))
	return c.JSON(http.StatusCreated, models.Success(enrollTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}))
}

// registerRunnerHandler handles POST /api/runners/register. This route
// sits outside bearer auth: the enroll token in the body is the
// credential. The response carries the runner secret exactly once.
func (s *Server) registerRunnerHandler(c *echo.Context) error {
	var req registerRunnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "request body is not valid JSON"))
	}
	if req.EnrollToken == "" {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "enroll_token is required"))
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "name is required"))
	}

	r, secret, err := s.runners.Register(c.Request().Context(), req.EnrollToken, req.Name, req.Capabilities)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.Success(registeredRunnerResponse{
		Runner: toRunnerResponse(r),
		Secret: secret,
	}))
}

// listRunnersHandler handles GET /api/runners.
func (s *Server) listRunnersHandler(c *echo.Context) error {
	runners, err := s.runners.ListRunners(c.Request().Context(), ownerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toRunnerResponses(runners)))
}

// getRunnerHandler handles GET /api/runners/:id.
func (s *Server) getRunnerHandler(c *echo.Context) error {
	r, err := s.runners.GetRunner(c.Request().Context(), ownerID(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toRunnerResponse(r)))
}

// updateRunnerCapabilitiesHandler handles PUT /api/runners/:id/capabilities.
func (s *Server) updateRunnerCapabilitiesHandler(c *echo.Context) error {
	var req updateCapabilitiesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "request body is not valid JSON"))
	}
	r, err := s.runners.UpdateCapabilities(c.Request().Context(), ownerID(c), c.Param("id"), req.Capabilities)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toRunnerResponse(r)))
}

// revokeRunnerHandler handles DELETE /api/runners/:id. Revocation is
// permanent; the runner's next connect attempt is rejected.
func (s *Server) revokeRunnerHandler(c *echo.Context) error {
	if err := s.runners.Revoke(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(map[string]any{"revoked": true}))
}
