package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/queue"
	"github.com/geoshapes/shape-api/internal/validate"
)

// SquareHandler implements the square resource on top of rectangle storage.
// A square is a rectangles row whose sides were written equal; the handler
// keeps that invariant on create and update.
type SquareHandler struct {
	Rects  RectangleStore
	Events EventPublisher
}

func NewSquareHandler(rects RectangleStore, events EventPublisher) *SquareHandler {
	return &SquareHandler{Rects: rects, Events: events}
}

// Create handles POST /api/squares.
func (h *SquareHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	body := bindBody(c)
	if err := validate.Square(body, false); err != nil {
		return badRequest(c, err.Error())
	}

	sq := model.NewSquare(body["length"].(float64), userID)
	if err := h.Rects.Create(c.Request().Context(), &sq.Rectangle); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "squares", sq.RectangleID, userID, queue.ActionCreated)

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/squares/%d", sq.RectangleID))
	return c.JSON(http.StatusCreated, sq.Representation())
}

// Get handles GET /api/squares/:id.
func (h *SquareHandler) Get(c echo.Context) error {
	sq, errResp := h.load(c)
	if sq == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, sq.Representation())
}

// GetArea handles GET /api/squares/:id/area.
func (h *SquareHandler) GetArea(c echo.Context) error {
	sq, errResp := h.load(c)
	if sq == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.AreaPayload{Area: sq.Area()})
}

// GetPerimeter handles GET /api/squares/:id/perimeter.
func (h *SquareHandler) GetPerimeter(c echo.Context) error {
	sq, errResp := h.load(c)
	if sq == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.PerimeterPayload{Perimeter: sq.Perimeter()})
}

// Update handles PUT /api/squares/:id.
func (h *SquareHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	sq, errResp := h.load(c)
	if sq == nil {
		return errResp
	}
	body := bindBody(c)
	if err := validate.Square(body, true); err != nil {
		return badRequest(c, err.Error())
	}

	sq.ApplyUpdate(body, userID)
	if err := h.Rects.Update(c.Request().Context(), &sq.Rectangle); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "squares", sq.RectangleID, userID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, sq.Representation())
}

// Delete handles DELETE /api/squares/:id.
func (h *SquareHandler) Delete(c echo.Context) error {
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
	publishShape(h.Events, c, "squares", id, userID, queue.ActionDeleted)
	return c.NoContent(http.StatusNoContent)
}

func (h *SquareHandler) load(c echo.Context) (*model.Square, error) {
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
	sq := model.SquareOf(*rect)
	return &sq, nil
}
