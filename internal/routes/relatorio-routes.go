package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/constants"
	"gedoc/pkg/middleware"
)

func registerRelatorioRoutes(api *echo.Group, c *controllers.RelatorioController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/documentos")

	g.GET("/exportar", c.ExportarDocumentos, authMW.RequirePermissions(constants.RelatoriosExportar))
}
