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

type DepartamentoController struct {
	service services.DepartamentoServiceInterface
	logger  *zap.Logger
}

func NewDepartamentoController(service services.DepartamentoServiceInterface, logger *zap.Logger) *DepartamentoController {
	return &DepartamentoController{service: service, logger: logger}
}

func (c *DepartamentoController) List(ctx echo.Context) error {
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

func (c *DepartamentoController) FindByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	departamento, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, departamento, "", http.StatusOK)
}

func (c *DepartamentoController) Create(ctx echo.Context) error {
	var payload dto.CreateDepartamentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	departamento, err := c.service.Create(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, departamento, "departamento criado com sucesso", http.StatusCreated)
}

func (c *DepartamentoController) Update(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDepartamentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	departamento, err := c.service.Update(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, departamento, "departamento atualizado com sucesso", http.StatusOK)
}

func (c *DepartamentoController) Delete(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "departamento removido com sucesso", http.StatusOK)
}
