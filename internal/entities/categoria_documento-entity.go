package entities

import (
	"github.com/aarondl/null/v8"

	"gedoc/pkg/types"
)

// CategoriaDocumento sempre pertence a exatamente um departamento.
type CategoriaDocumento struct {
	ID             uint64      `json:"id" db:"id"`
	Nome           string      `json:"nome" db:"nome"`
	Descricao      null.String `json:"descricao" db:"descricao"`
	DepartamentoID uint64      `json:"departamentoId" db:"departamento_id"`
	Cor            string      `json:"cor" db:"cor"`
	Ativo          bool        `json:"ativo" db:"ativo"`

	types.BaseEntity
}
