package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/queue"
	"github.com/geoshapes/shape-api/internal/validate"
)

// RectangleHandler implements the rectangle resource.  Every lookup runs
// scoped to the authenticated caller, so a rectangle owned by someone else
// is indistinguishable from one that does not exist.
type RectangleHandler struct {
	Rects  RectangleStore
	Events EventPublisher
}

func NewRectangleHandler(rects RectangleStore, events EventPublisher) *RectangleHandler {
	return &RectangleHandler{Rects: rects, Events: events}
}

// Create handles POST /api/rectangles.
func (h *RectangleHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	body := bindBody(c)
	if err := validate.Rectangle(body, false); err != nil {
		return badRequest(c, err.Error())
	}

	rect := &model.Rectangle{}
	rect.ApplyUpdate(body, userID)
	if err := h.Rects.Create(c.Request().Context(), rect); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "rectangles", rect.RectangleID, userID, queue.ActionCreated)

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/rectangles/%d", rect.RectangleID))
	return c.JSON(http.StatusCreated, rect.Representation())
}

// Get handles GET /api/rectangles/:id.
func (h *RectangleHandler) Get(c echo.Context) error {
	rect, errResp := h.load(c)
	if rect == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, rect.Representation())
}

// GetArea handles GET /api/rectangles/:id/area.
func (h *RectangleHandler) GetArea(c echo.Context) error {
	rect, errResp := h.load(c)
	if rect == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.AreaPayload{Area: rect.Area()})
}

// GetPerimeter handles GET /api/rectangles/:id/perimeter.
func (h *RectangleHandler) GetPerimeter(c echo.Context) error {
	rect, errResp := h.load(c)
	if rect == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.PerimeterPayload{Perimeter: rect.Perimeter()})
}

// Update handles PUT /api/rectangles/:id.  Only the fields present in the
// payload change (partial update even on PUT); ownership is re-stamped.
func (h *RectangleHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	rect, errResp := h.load(c)
	if rect == nil {
		return errResp
	}
	body := bindBody(c)
	if err := validate.Rectangle(body, true); err != nil {
		return badRequest(c, err.Error())
	}

	rect.ApplyUpdate(body, userID)
	if err := h.Rects.Update(c.Request().Context(), rect); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "rectangles", rect.RectangleID, userID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, rect.Representation())
}

// Delete handles DELETE /api/rectangles/:id.  Success is 204 with no body.
func (h *RectangleHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Rects.DeleteByIDAndOwner(c.Request().Context(), id, userID); err != nil {
		return lookupFailure(c, err)
	}
	publishShape(h.Events, c, "rectangles", id, userID, queue.ActionDeleted)
	return c.NoContent(http.StatusNoContent)
}

// load fetches the rectangle named by :id within the caller's ownership
// scope.  On failure it returns (nil, responseAlreadyWritten).
func (h *RectangleHandler) load(c echo.Context) (*model.Rectangle, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return nil, badRequest(c, "invalid id")
	}
	rect, err := h.Rects.GetByIDAndOwner(c.Request().Context(), id, userID)
	if err != nil {
		return nil, lookupFailure(c, err)
	}
	return rect, nil
}
