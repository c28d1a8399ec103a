package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docValido() CreateDocumentoDTO {
	return CreateDocumentoDTO{
		Titulo:          "Ofício 12/2026",
		DepartamentoID:  1,
		TipoDocumentoID: 2,
	}
}

func TestCreateDocumentoDTO_Validacao(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	t.Run("mínimo válido", func(t *testing.T) {
		assert.NoError(t, v.Struct(docValido()))
	})

	t.Run("título obrigatório", func(t *testing.T) {
		doc := docValido()
		doc.Titulo = ""
		assert.Error(t, v.Struct(doc))
	})

	t.Run("status fora da lista", func(t *testing.T) {
		doc := docValido()
		doc.Status = "publicado"
		assert.Error(t, v.Struct(doc))

		doc.Status = "approved"
		assert.NoError(t, v.Struct(doc))
	})

	t.Run("datas mutuamente exclusivas", func(t *testing.T) {
		agora := time.Now()
		doc := docValido()
		doc.DataRecebimento = &agora
		require.NoError(t, v.Struct(doc))

		doc.DataEnvio = &agora
		assert.Error(t, v.Struct(doc), "recebimento e envio juntos devem falhar")

		doc.DataRecebimento = nil
		assert.NoError(t, v.Struct(doc), "só envio é válido")
	})

	t.Run("limite de tags", func(t *testing.T) {
		doc := docValido()
		for i := 0; i < 10; i++ {
			doc.Tags = append(doc.Tags, "tag")
		}
		require.NoError(t, v.Struct(doc))

		doc.Tags = append(doc.Tags, "tag11")
		assert.Error(t, v.Struct(doc))
	})

	t.Run("tag vazia", func(t *testing.T) {
		doc := docValido()
		doc.Tags = []string{""}
		assert.Error(t, v.Struct(doc))
	})
}
