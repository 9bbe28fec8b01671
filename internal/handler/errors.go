package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/repository"
)

// The error responder maps every failure onto the uniform envelope: 400
// carries a specific validation message under "message", everything else
// carries the bare status reason under "error".

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"message": msg})
}

func errStatus(c echo.Context, code int) error {
	return c.JSON(code, map[string]string{"error": http.StatusText(code)})
}

func forbidden(c echo.Context) error    { return errStatus(c, http.StatusForbidden) }
func notFound(c echo.Context) error     { return errStatus(c, http.StatusNotFound) }
func internalErr(c echo.Context) error  { return errStatus(c, http.StatusInternalServerError) }
func unauthorized(c echo.Context) error { return errStatus(c, http.StatusUnauthorized) }

// lookupFailure distinguishes the single interesting repository outcome: a
// scoped miss becomes 404, anything else is a server fault.
func lookupFailure(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(c)
	}
	return internalErr(c)
}
