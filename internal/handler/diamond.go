package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/queue"
	"github.com/geoshapes/shape-api/internal/validate"
)

// DiamondHandler implements the diamond resource.
type DiamondHandler struct {
	Diamonds DiamondStore
	Events   EventPublisher
}

func NewDiamondHandler(diamonds DiamondStore, events EventPublisher) *DiamondHandler {
	return &DiamondHandler{Diamonds: diamonds, Events: events}
}

// Create handles POST /api/diamonds.
func (h *DiamondHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	body := bindBody(c)
	if err := validate.Diamond(body, false); err != nil {
		return badRequest(c, err.Error())
	}

	d := &model.Diamond{}
	d.ApplyUpdate(body, userID)
	if err := h.Diamonds.Create(c.Request().Context(), d); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "diamonds", d.DiamondID, userID, queue.ActionCreated)

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/diamonds/%d", d.DiamondID))
	return c.JSON(http.StatusCreated, d.Representation())
}

// Get handles GET /api/diamonds/:id.
func (h *DiamondHandler) Get(c echo.Context) error {
	d, errResp := h.load(c)
	if d == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, d.Representation())
}

// GetArea handles GET /api/diamonds/:id/area.
func (h *DiamondHandler) GetArea(c echo.Context) error {
	d, errResp := h.load(c)
	if d == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.AreaPayload{Area: d.Area()})
}

// GetPerimeter handles GET /api/diamonds/:id/perimeter.
func (h *DiamondHandler) GetPerimeter(c echo.Context) error {
	d, errResp := h.load(c)
	if d == nil {
		return errResp
	}
	return c.JSON(http.StatusOK, model.PerimeterPayload{Perimeter: d.Perimeter()})
}

// Update handles PUT /api/diamonds/:id.
func (h *DiamondHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	d, errResp := h.load(c)
	if d == nil {
		return errResp
	}
	body := bindBody(c)
	if err := validate.Diamond(body, true); err != nil {
		return badRequest(c, err.Error())
	}

	d.ApplyUpdate(body, userID)
	if err := h.Diamonds.Update(c.Request().Context(), d); err != nil {
		return internalErr(c)
	}
	publishShape(h.Events, c, "diamonds", d.DiamondID, userID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, d.Representation())
}

// Delete handles DELETE /api/diamonds/:id.
func (h *DiamondHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	if err := h.Diamonds.DeleteByIDAndOwner(c.Request().Context(), id, userID); err != nil {
		return lookupFailure(c, err)
	}
	publishShape(h.Events, c, "diamonds", id, userID, queue.ActionDeleted)
	return c.NoContent(http.StatusNoContent)
}

func (h *DiamondHandler) load(c echo.Context) (*model.Diamond, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, unauthorized(c)
	}
	id, err := parseID(c)
	if err != nil {
		return nil, badRequest(c, "invalid id")
	}
	d, err := h.Diamonds.GetByIDAndOwner(c.Request().Context(), id, userID)
	if err != nil {
		return nil, lookupFailure(c, err)
	}
	return d, nil
}
