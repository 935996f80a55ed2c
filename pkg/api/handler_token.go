package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/models"
)

// createTokenHandler handles POST /api/devices/tokens. The plaintext is
// in this response and nowhere else.
func (s *Server) createTokenHandler(c *echo.Context) error {
	var req createTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "request body is not valid JSON"))
	}
	if req.DeviceID == "" {
		return c.JSON(http.StatusBadRequest,
			models.Failure(models.ErrorTypeValidation, "device_id is required"))
	}

	tok, plaintext, err := s.tokens.Create(c.Request().Context(), ownerID(c), req.DeviceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.Success(createdTokenResponse{
		Token:     toDeviceTokenResponse(tok),
		Plaintext: plaintext,
	}))
}

// listTokensHandler handles GET /api/devices/tokens.
func (s *Server) listTokensHandler(c *echo.Context) error {
	tokens, err := s.tokens.List(c.Request().Context(), ownerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(toDeviceTokenResponses(tokens)))
}

// revokeTokenHandler handles DELETE /api/devices/tokens/:id.
func (s *Server) revokeTokenHandler(c *echo.Context) error {
	if err := s.tokens.Revoke(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Success(map[string]any{"revoked": true}))
}
