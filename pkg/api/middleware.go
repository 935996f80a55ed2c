package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/models"
)

// ownerContextKey is where authenticate stores the resolved owner id.
const ownerContextKey = "owner_id"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// authenticate resolves the requesting owner from either a static bearer
// token or a device token, in that order. Every authenticated route reads
// the owner from the request context; handlers never see credentials.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if bearer, ok := bearerToken(c.Request().Header.Get("Authorization")); ok {
				if owner, known := s.cfg.APITokens[bearer]; known {
					c.Set(ownerContextKey, owner)
					return next(c)
				}
			}
			if deviceToken := c.Request().Header.Get("X-Device-Token"); deviceToken != "" && s.tokens != nil {
				tok, err := s.tokens.Validate(c.Request().Context(), deviceToken)
				if err == nil {
					c.Set(ownerContextKey, tok.OwnerID)
					return next(c)
				}
			}
			return c.JSON(http.StatusUnauthorized,
				models.Failure(models.ErrorTypeInvalidCredentials, "authentication required"))
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header.
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// ownerID reads the authenticated owner from the request context.
func ownerID(c *echo.Context) string {
	owner, _ := c.Get(ownerContextKey).(string)
	return owner
}
