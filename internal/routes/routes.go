package routes

import (
	"github.com/labstack/echo/v4"

	"gedoc/internal/controllers"
	"gedoc/pkg/middleware"
)

// Controllers agrupa os handlers registrados no router.
type Controllers struct {
	Auth               *controllers.AuthController
	Departamento       *controllers.DepartamentoController
	CategoriaDocumento *controllers.CategoriaDocumentoController
	TipoDocumento      *controllers.TipoDocumentoController
	Documento          *controllers.DocumentoController
	Usuario            *controllers.UsuarioController
	Relatorio          *controllers.RelatorioController
}

// InitRouter registra todas as rotas. Tudo sob /api exige token de acesso;
// as permissões finas ficam em cada grupo de recurso.
func InitRouter(e *echo.Echo, c Controllers, authMW *middleware.AuthMiddleware) {
	registerAuthRoutes(e, c.Auth, authMW)

	api := e.Group("/api", authMW.Auth)
	registerDepartamentoRoutes(api, c.Departamento, authMW)
	registerCategoriaDocumentoRoutes(api, c.CategoriaDocumento, authMW)
	registerTipoDocumentoRoutes(api, c.TipoDocumento, authMW)
	registerDocumentoRoutes(api, c.Documento, authMW)
	registerUsuarioRoutes(api, c.Usuario, authMW)
	registerRelatorioRoutes(api, c.Relatorio, authMW)
}
