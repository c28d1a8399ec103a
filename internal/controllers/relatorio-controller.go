package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gedoc/internal/services"
	"gedoc/pkg/utils"
)

type RelatorioController struct {
	service services.RelatorioServiceInterface
	logger  *zap.Logger
}

func NewRelatorioController(service services.RelatorioServiceInterface, logger *zap.Logger) *RelatorioController {
	return &RelatorioController{service: service, logger: logger}
}

// ExportarDocumentos gera o XLSX com os filtros da query string e devolve o
// arquivo como download.
func (c *RelatorioController) ExportarDocumentos(ctx echo.Context) error {
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	arquivo, nome, err := c.service.ExportarDocumentos(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nome))
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := arquivo.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("falha ao escrever planilha na resposta", zap.Error(err))
		return err
	}
	return nil
}
