package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/mpawlak/wedrownik/internal/pkg/jwt"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// BearerToken extracts the bearer token from the Authorization header,
// returning an empty string when no well-formed header is present.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// SetIdentityFromToken validates the token and stores user_id and email on
// the Echo context. Route guards (echo-jwt success hooks, the optional
// middleware below) all funnel through here so handlers read identity the
// same way regardless of guard.
func SetIdentityFromToken(c echo.Context, tokenString string, config models.JWTConfig) error {
	claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	userIDClaim, ok := (*claims)["user_id"]
	if !ok {
		return fmt.Errorf("missing user_id claim")
	}
	userID, err := uuid.Parse(fmt.Sprintf("%v", userIDClaim))
	if err != nil {
		return fmt.Errorf("user_id claim is not a valid UUID")
	}

	c.Set("user_id", userID)
	if email, ok := (*claims)["email"]; ok {
		c.Set("email", fmt.Sprintf("%v", email))
	}
	return nil
}

// OptionalJWTMiddleware parses a bearer token when one is present but lets
// anonymous requests through. Handlers behind it decide how to treat the
// missing identity.
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if tokenString := BearerToken(c); tokenString != "" {
				if err := SetIdentityFromToken(c, tokenString, config); err != nil {
					return utils.UnauthorizedResponse(c, "Invalid token")
				}
			}
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user ID, or uuid.Nil when the
// request carries no identity.
func UserIDFromContext(c echo.Context) uuid.UUID {
	if userID, ok := c.Get("user_id").(uuid.UUID); ok {
		return userID
	}
	return uuid.Nil
}
