package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/internal/auth"
)

// ClientIDKey is the echo context key holding the authenticated client id
const ClientIDKey = "client_id"

// RequireToken rejects requests without a valid bearer token
func RequireToken(issuer *auth.TokenIssuer, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				logger.Warn("Request rejected: missing token", zap.String("path", c.Path()))
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "JWT token is required in Authorization header",
					Code:  "missing_token",
				})
			}

			claims, err := issuer.ValidateToken(token)
			if err != nil {
				logger.Warn("Request rejected: invalid token",
					zap.String("path", c.Path()),
					zap.Error(err))
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "Invalid or expired JWT token",
					Code:  "invalid_token",
				})
			}

			c.Set(ClientIDKey, claims.ClientID)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
