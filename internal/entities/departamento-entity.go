package entities

import (
	"github.com/aarondl/null/v8"

	"gedoc/pkg/types"
)

type Departamento struct {
	ID        uint64      `json:"id" db:"id"`
	Nome      string      `json:"nome" db:"nome"`
	Codigo    string      `json:"codigo" db:"codigo"`
	Descricao null.String `json:"descricao" db:"descricao"`
	Ativo     bool        `json:"ativo" db:"ativo"`

	types.BaseEntity
}
