package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/constants"
	"gedoc/pkg/middleware"
)

func registerUsuarioRoutes(api *echo.Group, c *controllers.UsuarioController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/usuarios", authMW.RequirePermissions(constants.UsuariosGerenciar))

	g.GET("", c.List)
	g.GET("/:id", c.FindByID)
	g.POST("", c.Create)
	g.PUT("/:id", c.Update)
	g.DELETE("/:id", c.Delete)
}
