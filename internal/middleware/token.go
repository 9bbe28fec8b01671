package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
)

// TokenVerifier resolves an opaque bearer token to its user.  The user
// repository implements it; tests substitute a fake.
type TokenVerifier interface {
	FindByToken(ctx context.Context, token string) (*model.User, error)
}

// TokenAuth returns a middleware that authenticates requests by bearer
// token.  The token is opaque: it is looked up against the users table, and
// an expired or unknown token is rejected without revealing which.  On
// success the authenticated user is stored in the context under "user" and
// its id under "user_id" for handlers downstream.
func TokenAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c)
			}
			token := strings.TrimPrefix(auth, "Bearer ")
			if token == "" {
				return unauthorized(c)
			}
			u, err := verifier.FindByToken(c.Request().Context(), token)
			if err != nil {
				return unauthorized(c)
			}
			c.Set("user", u)
			c.Set("user_id", u.UserID)
			return next(c)
		}
	}
}

// unauthorized writes the uniform 401 envelope.  The body never says
// whether the credential was missing, malformed, unknown or expired.
func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}
