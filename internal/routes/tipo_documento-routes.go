package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/constants"
	"gedoc/pkg/middleware"
)

func registerTipoDocumentoRoutes(api *echo.Group, c *controllers.TipoDocumentoController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/tipos-documento")

	ver := authMW.RequirePermissions(constants.CadastrosVisualizar, constants.CadastrosGerenciar)
	gerenciar := authMW.RequirePermissions(constants.CadastrosGerenciar)

	g.GET("", c.List, ver)
	g.GET("/:id", c.FindByID, ver)
	g.POST("", c.Create, gerenciar)
	g.PUT("/:id", c.Update, gerenciar)
	g.DELETE("/:id", c.Delete, gerenciar)
}
