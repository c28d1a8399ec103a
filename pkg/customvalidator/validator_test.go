package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type comCodigo struct {
	Codigo string `validate:"required,codigo"`
}

func TestRegraCodigo(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	require.NoError(t, RegisterCustomValidations(v))

	validos := []string{"RH", "TI-01", "FIN-2026", "A1", "DOC-INT-01"}
	for _, codigo := range validos {
		assert.NoError(t, v.Struct(comCodigo{Codigo: codigo}), "codigo: %s", codigo)
	}

	invalidos := []string{"rh", "R", "COM ESPACO", "-RH", "MUITOLONGO-123", "ação"}
	for _, codigo := range invalidos {
		assert.Error(t, v.Struct(comCodigo{Codigo: codigo}), "codigo: %s", codigo)
	}
}
