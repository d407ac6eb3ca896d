// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"fleetgate/internal/delivery/http/middleware"
	"fleetgate/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	DeviceHandler  *handler.DeviceHandler
	VehicleHandler *handler.VehicleHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	deviceHandler  *handler.DeviceHandler
	vehicleHandler *handler.VehicleHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		deviceHandler:  params.DeviceHandler,
		vehicleHandler: params.VehicleHandler,
		searchHandler:  params.SearchHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Sign-in page navigation; signed-in visitors are bounced back to
	// callbackUrl
	e.GET(middleware.SignInPath, r.authHandler.SignInPage, r.authMiddleware.RedirectIfAuthenticated)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/register", r.authHandler.Register)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/session", r.userHandler.GetSession)
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Dashboard API, everything behind the session guard
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/devices", r.deviceHandler.List)
		apiGroup.GET("/devices/search", r.deviceHandler.Search)
		apiGroup.POST("/devices", r.deviceHandler.Create)
		apiGroup.PATCH("/devices/:id", r.deviceHandler.Update)
		apiGroup.DELETE("/devices/:id", r.deviceHandler.Delete)

		apiGroup.GET("/vehicles", r.vehicleHandler.List)
		apiGroup.POST("/vehicles", r.vehicleHandler.Create)
		apiGroup.PATCH("/vehicles/:id", r.vehicleHandler.Update)
		apiGroup.DELETE("/vehicles/:id", r.vehicleHandler.Delete)
	}

	// Live search over a websocket, same guard as the REST surface
	e.GET("/ws/devices/search", r.searchHandler.Live, r.authMiddleware.Authenticate)
}
