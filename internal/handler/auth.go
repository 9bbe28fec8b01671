package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/config"
)

// AuthHandler issues and revokes bearer tokens.  Login sits behind the
// Basic auth middleware, which verifies credentials and places the user in
// the request context before the handler runs.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// Login handles GET /api/login.  It returns the caller's bearer token,
// minting a new one only when the stored token has less than a minute of
// validity left.
func (h *AuthHandler) Login(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return unauthorized(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, err := h.Users.IssueToken(ctx, u, time.Duration(h.Cfg.TokenTTLSec)*time.Second)
	if err != nil {
		return internalErr(c)
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// Logout handles DELETE /api/login.  The stored token is expired in place;
// the same token value is rejected from the next request on.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.RevokeToken(ctx, userID); err != nil {
		return internalErr(c)
	}
	return c.NoContent(http.StatusNoContent)
}
