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

type DocumentoController struct {
	service services.DocumentoServiceInterface
	logger  *zap.Logger
}

func NewDocumentoController(service services.DocumentoServiceInterface, logger *zap.Logger) *DocumentoController {
	return &DocumentoController{service: service, logger: logger}
}

func (c *DocumentoController) List(ctx echo.Context) error {
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

func (c *DocumentoController) ListByDepartamento(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.ListByDepartamento(ctx.Request().Context(), id, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PaginatedResponse(ctx, result.Items, "", filter, result.Total)
}

func (c *DocumentoController) ListByTipo(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	filter, err := utils.ParseFilterFromQuery(ctx.QueryParams())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	result, err := c.service.ListByTipo(ctx.Request().Context(), id, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.PaginatedResponse(ctx, result.Items, "", filter, result.Total)
}

func (c *DocumentoController) FindByID(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	documento, err := c.service.FindByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, documento, "", http.StatusOK)
}

func (c *DocumentoController) Create(ctx echo.Context) error {
	claims, err := utils.GetClaimsFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.CreateDocumentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	documento, err := c.service.Create(ctx.Request().Context(), payload, claims)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, documento, "documento criado com sucesso", http.StatusCreated)
}

func (c *DocumentoController) Update(ctx echo.Context) error {
	claims, err := utils.GetClaimsFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.UpdateDocumentoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("corpo da requisição inválido"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	documento, err := c.service.Update(ctx.Request().Context(), id, payload, claims)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, documento, "documento atualizado com sucesso", http.StatusOK)
}

func (c *DocumentoController) Delete(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.service.Delete(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "documento removido com sucesso", http.StatusOK)
}

// Upload recebe o anexo no campo multipart "arquivo".
func (c *DocumentoController) Upload(ctx echo.Context) error {
	claims, err := utils.GetClaimsFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	fileHeader, err := ctx.FormFile("arquivo")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("campo 'arquivo' é obrigatório", nil), c.logger)
	}
	documento, err := c.service.Upload(ctx.Request().Context(), id, fileHeader, claims)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, documento, "arquivo enviado com sucesso", http.StatusOK)
}
