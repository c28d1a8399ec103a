package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/constants"
	"gedoc/pkg/middleware"
)

func registerCategoriaDocumentoRoutes(api *echo.Group, c *controllers.CategoriaDocumentoController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/categorias-documento")

	ver := authMW.RequirePermissions(constants.CadastrosVisualizar, constants.CadastrosGerenciar)
	gerenciar := authMW.RequirePermissions(constants.CadastrosGerenciar)

	g.GET("", c.List, ver)
	g.GET("/:id", c.FindByID, ver)
	g.POST("", c.Create, gerenciar)
	g.PUT("/:id", c.Update, gerenciar)
	g.DELETE("/:id", c.Delete, gerenciar)
}
