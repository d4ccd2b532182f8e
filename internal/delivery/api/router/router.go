// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"board/internal/delivery/api/middleware"
	"board/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CommentHandler *handler.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	commentHandler *handler.CommentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		commentHandler: params.CommentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Everything below requires a live bearer token
	protected := apiV1.Group("", r.authMiddleware.Authenticate)

	userGroup := protected.Group("/user_information")
	{
		userGroup.GET("", r.authHandler.GetUserInfo)
		userGroup.POST("", r.authHandler.UpdateUserInfo)
	}

	commentsGroup := protected.Group("/comments")
	{
		commentsGroup.GET("/:task_id", r.commentHandler.ListComments)
		commentsGroup.POST("/:task_id", r.commentHandler.CreateComment)
		commentsGroup.POST("/:comment_id/replies", r.commentHandler.CreateReply)
	}
}
