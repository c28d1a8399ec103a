package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gedoc/pkg/errors"
)

// parseIDParam lê um parâmetro de rota numérico; valores não numéricos ou
// não positivos são erro de validação.
func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("parâmetro '"+name+"' deve ser um inteiro positivo", nil)
	}
	return id, nil
}
