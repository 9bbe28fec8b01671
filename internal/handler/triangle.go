package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/queue"
	"github.com/geoshapes/shape-api/internal/validate"
)

// TriangleHandler implements the triangle resource.
type TriangleHandler struct {
	Triangles TriangleStore
	Events    EventPublisher
}

func NewTriangleHandler(triangles TriangleStore, events EventPublisher) *TriangleHandler {
	return &TriangleHandler{Triangles: triangles, Events: events}
}

// Create handles POST /api/triangles.
func (h *TriangleHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	body := bindBody(c)
	if err := validate.Triangle(body, false); err != nil {
		return badRequest(c, err.Error())
	}

	t := &model.Triangle{}
	t.ApplyUpdate(body, userID)
	if err := h.Triangles.Create(c.Request().Context(), t); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "triangles", t.TriangleID, userID, queue.ActionCreated)

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/triangles/%d", t.TriangleID))
	return c.JSON(http.StatusCreated, t.Representation())
}

// Get handles GET /api/triangles/:id.
func (h *TriangleHandler) Get(c echo.Context) error {
	t, errResp := h.load(c)
	if t == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, t.Representation())
}

// GetArea handles GET /api/triangles/:id/area.
func (h *TriangleHandler) GetArea(c echo.Context) error {
	t, errResp := h.load(c)
	if t == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.AreaPayload{Area: t.Area()})
}

// GetPerimeter handles GET /api/triangles/:id/perimeter.
func (h *TriangleHandler) GetPerimeter(c echo.Context) error {
	t, errResp := h.load(c)
	if t == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.PerimeterPayload{Perimeter: t.Perimeter()})
}

// Update handles PUT /api/triangles/:id.
func (h *TriangleHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	t, errResp := h.load(c)
	if t == nil {
		return errResp
	}
	body := bindBody(c)
	if err := validate.Triangle(body, true); err != nil {
		return badRequest(c, err.Error())
	}

	t.ApplyUpdate(body, userID)
	if err := h.Triangles.Update(c.Request().Context(), t); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "triangles", t.TriangleID, userID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, t.Representation())
}

// Delete handles DELETE /api/triangles/:id.
func (h *TriangleHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Triangles.DeleteByIDAndOwner(c.Request().Context(), id, userID); err != nil {
		return lookupFailure(c, err)
	}
	publishShape(h.Events, c, "triangles", id, userID, queue.ActionDeleted)
	return c.NoContent(http.StatusNoContent)
}

func (h *TriangleHandler) load(c echo.Context) (*model.Triangle, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return nil, badRequest(c, "invalid id")
	}
	t, err := h.Triangles.GetByIDAndOwner(c.Request().Context(), id, userID)
	if err != nil {
		return nil, lookupFailure(c, err)
	}
	return t, nil
}
