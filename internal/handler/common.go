package handler // handler implements the HTTP resource handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/queue"
)

// Store interfaces are declared on the consuming side so handlers can be
// exercised in tests with in-memory fakes.  The repository package provides
// the production implementations.

// UserStore is the persistence surface the user and auth handlers need.
type UserStore interface {
	Create(ctx context.Context, u *model.User, password string, cost int) error
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByUserName(ctx context.Context, name string) (*model.User, error)
	UserNameInUse(ctx context.Context, name string) (bool, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *model.User) error
	IssueToken(ctx context.Context, u *model.User, ttl time.Duration) (string, error)
	RevokeToken(ctx context.Context, userID uint64) error
}

// RectangleStore persists rectangles; the square handler shares it because
// squares live in the rectangles table.
type RectangleStore interface {
	Create(ctx context.Context, rect *model.Rectangle) error
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Rectangle, error)
	Update(ctx context.Context, rect *model.Rectangle) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error
}

// TriangleStore persists triangles.
type TriangleStore interface {
	Create(ctx context.Context, t *model.Triangle) error
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Triangle, error)
	Update(ctx context.Context, t *model.Triangle) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error
}

// DiamondStore persists diamonds.
type DiamondStore interface {
	Create(ctx context.Context, d *model.Diamond) error
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Diamond, error)
	Update(ctx context.Context, d *model.Diamond) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error
}

// EventPublisher announces shape lifecycle changes.  May be nil, in which
// case nothing is published.
type EventPublisher interface {
	ShapeChanged(ctx context.Context, event queue.ShapeChangedEvent) error
}

// parseID parses the :id route parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// getUserID extracts the authenticated user's id stored by the auth
// middleware.
func getUserID(c echo.Context) (uint64, error) {
	if id, ok := c.Get("user_id").(uint64); ok && id != 0 {
		return id, nil
	}
	return 0, errors.New("no authenticated user in context")
}

// currentUser extracts the full user record stored by the auth middleware.
func currentUser(c echo.Context) (*model.User, error) {
	if u, ok := c.Get("user").(*model.User); ok && u != nil {
		return u, nil
	}
	return nil, errors.New("no authenticated user in context")
}

// bindBody decodes the request body into a generic map so that validation
// can distinguish absent fields from present ones.  A missing or malformed
// body yields an empty map; the presence checks then produce the
// appropriate validation error.
func bindBody(c echo.Context) map[string]any {
	body := map[string]any{}
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return map[string]any{}
	}
	return body
}

// publishShape fires a lifecycle event when a publisher is wired.  Publish
// failures are logged inside the publisher and never fail the request.
func publishShape(events EventPublisher, c echo.Context, kind string, shapeID, userID uint64, action string) {
	if events == nil {
		return
	}
	_ = events.ShapeChanged(c.Request().Context(), queue.ShapeChangedEvent{
		ShapeKind:  kind,
		ShapeID:    shapeID,
		UserID:     userID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}
