package entities

import (
	"github.com/aarondl/null/v8"

	"gedoc/pkg/types"
)

type Usuario struct {
	ID             uint64      `json:"id" db:"id"`
	Nome           string      `json:"nome" db:"nome"`
	Apelido        null.String `json:"apelido" db:"apelido"`
	Username       string      `json:"username" db:"username"`
	Senha          string      `json:"-" db:"senha"`
	DepartamentoID null.Uint64 `json:"departamentoId" db:"departamento_id"`
	Ativo          bool        `json:"ativo" db:"ativo"`

	// Roles é carregado via usuario_roles; não é uma coluna da tabela.
	Roles []string `json:"roles" db:"-"`

	types.BaseEntity
}
