package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/services"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/utils"
)

type TipoDocumentoController struct {
	service services.TipoDocumentoServiceInterface
	logger  *zap.Logger
}

func NewTipoDocumentoController(service services.TipoDocumentoServiceInterface, logger *zap.Logger) *TipoDocumentoController {
	return &TipoDocumentoController{service: service, logger: logger}
}

func (c *TipoDocumentoController) List(ctx echo.Context) error {
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.List(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PaginatedResponse(ctx, result.Items, "", filter, result.Total)
}

func (c *TipoDocumentoController) FindByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	tipo, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tipo, "", http.StatusOK)
}

func (c *TipoDocumentoController) Create(ctx echo.Context) error {
	var payload dto.CreateTipoDocumentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	tipo, err := c.service.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tipo, "tipo de documento criado com sucesso", http.StatusCreated)
}

func (c *TipoDocumentoController) Update(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateTipoDocumentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	tipo, err := c.service.Update(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, tipo, "tipo de documento atualizado com sucesso", http.StatusOK)
}

func (c *TipoDocumentoController) Delete(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "tipo de documento removido com sucesso", http.StatusOK)
}
