package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var codigoRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{1,9}$`)

// RegisterCustomValidations registra as regras de validação próprias do domínio
// no validador compartilhado da aplicação.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("codigo", isCodigoValido)
}

// Códigos de departamento/tipo/categoria: maiúsculos, 2 a 10 caracteres.
func isCodigoValido(fl validator.FieldLevel) bool {
	return codigoRegex.MatchString(fl.Field().String())
}
