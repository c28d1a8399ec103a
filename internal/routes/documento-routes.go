package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/constants"
	"gedoc/pkg/middleware"
)

func registerDocumentoRoutes(api *echo.Group, c *controllers.DocumentoController, authMW *middleware.AuthMiddleware) {
	g := api.Group("/documentos")

	ver := authMW.RequirePermissions(constants.DocumentosVisualizar)
	criar := authMW.RequirePermissions(constants.DocumentosCriar)
	editar := authMW.RequirePermissions(constants.DocumentosEditar)
	excluir := authMW.RequirePermissions(constants.DocumentosExcluir)

	g.GET("", c.List, ver)
	g.GET("/departamento/:id", c.ListByDepartamento, ver)
	g.GET("/tipo/:id", c.ListByTipo, ver)
	g.GET("/:id", c.FindByID, ver)
	g.POST("", c.Create, criar)
	g.PUT("/:id", c.Update, editar)
	g.DELETE("/:id", c.Delete, excluir)
	g.POST("/:id/upload", c.Upload, editar)
}
