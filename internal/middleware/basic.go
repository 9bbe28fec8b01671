package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/utils"
)

// CredentialStore looks up users for HTTP Basic authentication.  Only the
// login route uses this scheme; everything else runs on bearer tokens.
type CredentialStore interface {
	GetByUserName(ctx context.Context, name string) (*model.User, error)
}

// BasicAuth returns a middleware that authenticates user_name+password from
// the Authorization header.  Wrong name and wrong password produce the same
// 401 envelope.
func BasicAuth(store CredentialStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			name, pass, ok := c.Request().BasicAuth()
			if !ok || name == "" {
				return unauthorized(c)
			}
			u, err := store.GetByUserName(c.Request().Context(), name)
			if err != nil {
				return unauthorized(c)
			}
			if !utils.VerifyPassword(u.PasswordHash, pass) {
				return unauthorized(c)
			}
			c.Set("user", u)
			c.Set("user_id", u.UserID)
			return next(c)
		}
	}
}
