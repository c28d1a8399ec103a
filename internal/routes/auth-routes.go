package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/middleware"
)

func registerAuthRoutes(e *echo.Echo, c *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	auth := e.Group("/auth")

	auth.POST("/login", c.Login)
	auth.POST("/register", c.Register)
	auth.POST("/refresh", c.Refresh)

	auth.GET("/me", c.Me, authMW.Auth)
	auth.POST("/change-password", c.ChangePassword, authMW.Auth)
	auth.POST("/logout", c.Logout, authMW.Auth)
}
