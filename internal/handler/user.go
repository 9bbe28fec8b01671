package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/config"
	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/repository"
	"github.com/geoshapes/shape-api/internal/validate"
)

const (
	msgUserNameTaken = "please use a different username"
	msgEmailTaken    = "please use a different email address"
)

// UserHandler bundles dependencies for the user resource endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewUserHandler(cfg config.Config, users UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// Register handles POST /api/users/register.  No authentication: this is
// how accounts come into existence.  Responds 201 with the representation
// and a Location header for the new resource.
func (h *UserHandler) Register(c echo.Context) error {
	body := bindBody(c)
	if err := validate.Register(body); err != nil {
		return badRequest(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := &model.User{UserName: body["user_name"].(string)}
	if v, ok := body["email"].(string); ok && v != "" {
		u.Email = &v
	}
	if v, ok := body["first_name"].(string); ok && v != "" {
		u.FirstName = &v
	}
	if v, ok := body["last_name"].(string); ok && v != "" {
		u.LastName = &v
	}

	password := body["password"].(string)
	if err := h.Users.Create(ctx, u, password, h.Cfg.BcryptCost); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNameExists):
			return badRequest(c, msgUserNameTaken)
		case errors.Is(err, repository.ErrEmailExists):
			return badRequest(c, msgEmailTaken)
		default:
			return internalErr(c)
		}
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/users/%d", u.UserID))
	return c.JSON(http.StatusCreated, u.Representation())
}

// Get handles GET /api/users/:id.  A user may only read their own record;
// anything else is 403 regardless of whether the id exists.
func (h *UserHandler) Get(c echo.Context) error {
	callerID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if id != callerID {
		return forbidden(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return lookupFailure(c, err)
	}
	return c.JSON(http.StatusOK, u.Representation())
}

// Update handles PUT /api/users/:id.  Only the profile fields present in
// the payload change; the password is not updatable here.  Renaming to a
// user_name or email someone else holds yields the same 400 messages as
// registration.
func (h *UserHandler) Update(c echo.Context) error {
	callerID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if id != callerID {
		return forbidden(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return lookupFailure(c, err)
	}

	body := bindBody(c)
	if v, ok := body["user_name"].(string); ok && v != "" && v != u.UserName {
		if taken, err := h.Users.UserNameInUse(ctx, v); err != nil {
			return internalErr(c)
		} else if taken {
			return badRequest(c, msgUserNameTaken)
		}
	}
	if v, ok := body["email"].(string); ok && v != "" && (u.Email == nil || v != *u.Email) {
		if taken, err := h.Users.EmailInUse(ctx, v); err != nil {
			return internalErr(c)
		} else if taken {
			return badRequest(c, msgEmailTaken)
		}
	}

	u.ApplyUpdate(body)
	if err := h.Users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNameExists):
			return badRequest(c, msgUserNameTaken)
		case errors.Is(err, repository.ErrEmailExists):
			return badRequest(c, msgEmailTaken)
		default:
			return internalErr(c)
		}
	}
	return c.JSON(http.StatusOK, u.Representation())
}
