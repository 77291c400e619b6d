package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/rail-booking/internal/handler" // handlers for stations, fares, bookings and accounts
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Health   echo.HandlerFunc
	Stations *handler.StationHandler
	Fares    *handler.FareHandler
	Bookings *handler.BookingHandler
	Auth     *handler.AuthHandler
}

// Middlewares applied to selected routes.  Nil entries are skipped.
type Middlewares struct {
	Cache     echo.MiddlewareFunc // GET /stations
	RateLimit echo.MiddlewareFunc // credential and booking writes
}

// RegisterRoutes mounts the public API on e.  None of the routes require
// authentication; callers pass their userId explicitly.
func RegisterRoutes(e *echo.Echo, h Handlers, m Middlewares) {
	// Load balancers and monitoring probe this endpoint.
	e.GET("/healthz", h.Health)

	// Station data never changes while the process runs, so it is cacheable.
	e.GET("/stations", h.Stations.List, optional(m.Cache)...)
	e.POST("/calculate-fare", h.Fares.Calculate)

	limited := optional(m.RateLimit)
	e.POST("/book", h.Bookings.Book, limited...)
	e.GET("/my-bookings", h.Bookings.MyBookings)

	e.POST("/register", h.Auth.Register, limited...)
	e.POST("/login", h.Auth.Login, limited...)
}

func optional(mw echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if mw == nil {
		return nil
	}
	return []echo.MiddlewareFunc{mw}
}
