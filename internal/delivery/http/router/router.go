// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arcade/internal/delivery/http/middleware"
	"arcade/internal/delivery/http/router/handler"
	"arcade/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	MailHandler    *handler.MailHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	mailHandler    *handler.MailHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		mailHandler:    params.MailHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.accountHandler.ListUsers)
		userGroup.GET("/:id", r.accountHandler.GetUser)
		userGroup.PUT("/:id", r.accountHandler.UpdateProfile)
		userGroup.DELETE("/:id", r.accountHandler.DeleteUser)
		userGroup.PATCH("/password", r.accountHandler.UpdatePassword)
	}

	// Mail routes restricted to platform operators
	mailGroup := e.Group("/mail")
	mailGroup.Use(r.authMiddleware.Authenticate)
	mailGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
	{
		mailGroup.POST("/otp", r.mailHandler.SendOTP)
		mailGroup.POST("/block", r.mailHandler.SendAccountBlocked)
		mailGroup.POST("/forgot-password", r.mailHandler.SendPasswordReset)
	}
}
