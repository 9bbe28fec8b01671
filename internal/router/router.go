package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/handler"
	"github.com/geoshapes/shape-api/internal/middleware"
)

// Handlers collects everything the API surface needs.  Auth is a property
// of the route group, not of individual handlers: login runs behind Basic
// auth, registration is open, and every other /api route runs behind the
// bearer-token middleware.
type Handlers struct {
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Rectangles *handler.RectangleHandler
	Squares    *handler.SquareHandler
	Triangles  *handler.TriangleHandler
	Diamonds   *handler.DiamondHandler
}

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the /api surface.  creds backs Basic auth on the login
// route, verifier backs bearer-token auth everywhere else.
func RegisterAPI(e *echo.Echo, h Handlers, creds middleware.CredentialStore, verifier middleware.TokenVerifier) {
	api := e.Group("/api")

	// Registration is the only open endpoint: accounts have to come from
	// somewhere.  Login exchanges Basic credentials for a bearer token and
	// DELETE on the same path revokes the current token.
	api.POST("/users/register", h.Users.Register)
	api.GET("/login", h.Auth.Login, middleware.BasicAuth(creds))
	api.DELETE("/login", h.Auth.Logout, middleware.TokenAuth(verifier))

	auth := api.Group("", middleware.TokenAuth(verifier))

	auth.GET("/users/:id", h.Users.Get)
	auth.PUT("/users/:id", h.Users.Update)

	registerShape(auth, "/rectangles", shapeOps{
		create: h.Rectangles.Create, get: h.Rectangles.Get,
		area: h.Rectangles.GetArea, perimeter: h.Rectangles.GetPerimeter,
		update: h.Rectangles.Update, delete: h.Rectangles.Delete,
	})
	registerShape(auth, "/squares", shapeOps{
		create: h.Squares.Create, get: h.Squares.Get,
		area: h.Squares.GetArea, perimeter: h.Squares.GetPerimeter,
		update: h.Squares.Update, delete: h.Squares.Delete,
	})
	registerShape(auth, "/triangles", shapeOps{
		create: h.Triangles.Create, get: h.Triangles.Get,
		area: h.Triangles.GetArea, perimeter: h.Triangles.GetPerimeter,
		update: h.Triangles.Update, delete: h.Triangles.Delete,
	})
	registerShape(auth, "/diamonds", shapeOps{
		create: h.Diamonds.Create, get: h.Diamonds.Get,
		area: h.Diamonds.GetArea, perimeter: h.Diamonds.GetPerimeter,
		update: h.Diamonds.Update, delete: h.Diamonds.Delete,
	})
}

// shapeOps is the uniform operation set every shape collection exposes.
type shapeOps struct {
	create, get, area, perimeter, update, delete echo.HandlerFunc
}

func registerShape(g *echo.Group, prefix string, ops shapeOps) {
	g.POST(prefix, ops.create)
	g.GET(prefix+"/:id", ops.get)
	g.GET(prefix+"/:id/area", ops.area)
	g.GET(prefix+"/:id/perimeter", ops.perimeter)
	g.PUT(prefix+"/:id", ops.update)
	g.DELETE(prefix+"/:id", ops.delete)
}
