// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"allergo/internal/delivery/api/middleware"
	"allergo/internal/delivery/api/router/handler"
	"allergo/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const apiPrefix = "/api/v1"

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	FoodHandler    *handler.FoodHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	foodHandler    *handler.FoodHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		foodHandler:    params.FoodHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	var (
		anyRole = entity.Roles{}
		admin   = entity.Roles{entity.RoleAdmin}

		optional    = r.authMiddleware.Authenticate(anyRole, false, false)
		required    = r.authMiddleware.Authenticate(anyRole, true, false)
		freshOnly   = r.authMiddleware.Authenticate(anyRole, true, true)
		adminOnly   = r.authMiddleware.Authenticate(admin, true, false)
		apiV1       = e.Group(apiPrefix)
		usersGroup  = apiV1.Group("/users")
		foodsGroup  = apiV1.Group("/foods")
		ingredients = apiV1.Group("/ingredients")
	)

	apiV1.GET("/health", handler.HealthCheck)

	// Account lifecycle and sessions
	{
		usersGroup.POST("/signup", r.userHandler.Signup)
		usersGroup.POST("/activate/send", r.userHandler.SendActivationOTP)
		usersGroup.POST("/activate", r.userHandler.Activate)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.POST("/reset-password/send", r.userHandler.SendResetPasswordOTP)
		usersGroup.POST("/reset-password/verify", r.userHandler.VerifyResetPasswordOTP)
		usersGroup.POST("/reset-password", r.userHandler.ResetPassword)
		usersGroup.POST("/refresh", r.userHandler.Refresh)
		usersGroup.POST("/logout", r.userHandler.Logout, required)
		usersGroup.GET("", r.userHandler.GetDetail, required)
		usersGroup.PATCH("", r.userHandler.UpdateCredentials, freshOnly)
	}

	// Profile
	{
		usersGroup.PATCH("/profile", r.profileHandler.UpdateProfile, required)
		usersGroup.POST("/profile/upload", r.profileHandler.UploadAvatar, required)
	}

	// Catalog
	{
		foodsGroup.GET("", r.foodHandler.ListFoods)
		foodsGroup.GET("/:id", r.foodHandler.GetFood, optional)
		foodsGroup.POST("", r.foodHandler.CreateFood, adminOnly)

		ingredients.GET("", r.foodHandler.ListIngredients)
		ingredients.POST("", r.foodHandler.CreateIngredient, adminOnly)
	}
}
