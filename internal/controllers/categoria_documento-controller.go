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

type CategoriaDocumentoController struct {
	service services.CategoriaDocumentoServiceInterface
	logger  *zap.Logger
}

func NewCategoriaDocumentoController(service services.CategoriaDocumentoServiceInterface, logger *zap.Logger) *CategoriaDocumentoController {
	return &CategoriaDocumentoController{service: service, logger: logger}
}

func (c *CategoriaDocumentoController) List(ctx echo.Context) error {
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

func (c *CategoriaDocumentoController) FindByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	categoria, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, categoria, "", http.StatusOK)
}

func (c *CategoriaDocumentoController) Create(ctx echo.Context) error {
	var payload dto.CreateCategoriaDocumentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	categoria, err := c.service.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, categoria, "categoria criada com sucesso", http.StatusCreated)
}

func (c *CategoriaDocumentoController) Update(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateCategoriaDocumentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	categoria, err := c.service.Update(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, categoria, "categoria atualizada com sucesso", http.StatusOK)
}

func (c *CategoriaDocumentoController) Delete(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "categoria removida com sucesso", http.StatusOK)
}
