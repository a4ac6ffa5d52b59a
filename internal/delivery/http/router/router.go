// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hrdesk/internal/delivery/http/middleware"
	"hrdesk/internal/delivery/http/router/handler"
	"hrdesk/internal/domain/entity"
	"hrdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	PasswordResetHandler *handler.PasswordResetHandler
	AuthMiddleware       *middleware.AuthMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
	Metrics              *metrics.AuthMetrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	passwordResetHandler *handler.PasswordResetHandler
	authMiddleware       *middleware.AuthMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
	metrics              *metrics.AuthMetrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		passwordResetHandler: params.PasswordResetHandler,
		authMiddleware:       params.AuthMiddleware,
		rateLimitMiddleware:  params.RateLimitMiddleware,
		metrics:              params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Handle)
		authGroup.GET("/session", r.authHandler.Session, r.authMiddleware.Authenticate)
		authGroup.POST("/password-reset", r.passwordResetHandler.RequestReset)
	}

	// Reset desk, HR staff only
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleHR))
	{
		adminGroup.GET("/password-resets", r.passwordResetHandler.ListResets)
		adminGroup.PATCH("/password-resets/:id", r.passwordResetHandler.CompleteReset)
	}
}
