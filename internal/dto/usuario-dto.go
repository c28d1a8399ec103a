package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateUsuarioDTO struct {
	Nome           string   `json:"nome" validate:"required,min=2,max=150"`
	Apelido        *string  `json:"apelido" validate:"omitempty,max=100"`
	Username       string   `json:"username" validate:"required,min=3,max=100,alphanum"`
	Senha          string   `json:"senha" validate:"required,min=8,max=72"`
	DepartamentoID *uint64  `json:"departamentoId" validate:"omitempty,gt=0"`
	Roles          []string `json:"roles" validate:"omitempty,dive,min=1"`
	Ativo          *bool    `json:"ativo"`
}

type UpdateUsuarioDTO struct {
	Nome           string   `json:"nome" validate:"required,min=2,max=150"`
	Apelido        *string  `json:"apelido" validate:"omitempty,max=100"`
	Username       string   `json:"username" validate:"required,min=3,max=100,alphanum"`
	DepartamentoID *uint64  `json:"departamentoId" validate:"omitempty,gt=0"`
	Roles          []string `json:"roles" validate:"omitempty,dive,min=1"`
	Ativo          *bool    `json:"ativo"`
}

type UsuarioDTO struct {
	ID           uint64                `json:"id"`
	Nome         string                `json:"nome"`
	Apelido      null.String           `json:"apelido"`
	Username     string                `json:"username"`
	Departamento *ShortDepartamentoDTO `json:"departamento"`
	Roles        []string              `json:"roles"`
	Ativo        bool                  `json:"ativo"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}
