package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

type SuccessEnvelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type Pagination struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      uint64 `json:"total"`
	TotalPages int    `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
}

// NewPagination calcula os metadados de paginação a partir de page/limit/total.
func NewPagination(page, limit int, total uint64) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && totalPages > 0,
	}
}

func SuccessResponse(ctx echo.Context, data any, message string, code int) error {
	return ctx.JSON(code, &SuccessEnvelope{Success: true, Data: data, Message: message})
}

func PaginatedResponse(ctx echo.Context, data any, message string, filter types.Filter, total uint64) error {
	return ctx.JSON(http.StatusOK, &SuccessEnvelope{
		Success:    true,
		Data:       data,
		Message:    message,
		Pagination: NewPagination(filter.Page, filter.Limit, total),
	})
}

// ErrorResponse é o handler terminal de erros: mapeia o tipo do erro para o
// status HTTP e o envelope JSON uniforme. Erros inesperados viram 500 sem
// vazar detalhe para o cliente.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError && httpErr.Err != nil {
			logger.Error("erro interno",
				zap.Int("status", httpErr.Code),
				zap.String("uri", ctx.Request().RequestURI),
				zap.Error(httpErr.Err),
			)
		}
		return ctx.JSON(httpErr.Code, &ErrorEnvelope{
			Error: ErrorBody{Code: httpErr.ErrorCode, Message: httpErr.Message, Details: httpErr.Details},
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			details = append(details, fmt.Sprintf("campo '%s' falhou na regra '%s'", fe.Field(), fe.Tag()))
		}
		return ctx.JSON(http.StatusBadRequest, &ErrorEnvelope{
			Error: ErrorBody{Code: apperrors.CodeValidation, Message: "dados inválidos", Details: details},
		})
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, &ErrorEnvelope{
			Error: ErrorBody{Code: apperrors.CodeNotFound, Message: err.Error()},
		})
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrTokenIsNotRefresh),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrClaimsNotFoundInContext),
		errors.Is(err, apperrors.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, &ErrorEnvelope{
			Error: ErrorBody{Code: apperrors.CodeUnauthorized, Message: err.Error()},
		})
	case errors.Is(err, apperrors.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, &ErrorEnvelope{
			Error: ErrorBody{Code: apperrors.CodeForbidden, Message: err.Error()},
		})
	}

	logger.Error("erro inesperado", zap.String("uri", ctx.Request().RequestURI), zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, &ErrorEnvelope{
		Error: ErrorBody{Code: apperrors.CodeInternal, Message: "erro interno do servidor"},
	})
}
