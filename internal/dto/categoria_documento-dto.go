package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateCategoriaDocumentoDTO struct {
	Nome           string  `json:"nome" validate:"required,min=2,max=150"`
	Descricao      *string `json:"descricao" validate:"omitempty,max=1000"`
	DepartamentoID uint64  `json:"departamentoId" validate:"required,gt=0"`
	Cor            string  `json:"cor" validate:"omitempty,hexcolor"`
	Ativo          *bool   `json:"ativo"`
}

type UpdateCategoriaDocumentoDTO struct {
	Nome           string  `json:"nome" validate:"required,min=2,max=150"`
	Descricao      *string `json:"descricao" validate:"omitempty,max=1000"`
	DepartamentoID uint64  `json:"departamentoId" validate:"required,gt=0"`
	Cor            string  `json:"cor" validate:"omitempty,hexcolor"`
	Ativo          *bool   `json:"ativo"`
}

// CategoriaDocumentoDTO expande a referência de departamento no lugar do id.
type CategoriaDocumentoDTO struct {
	ID           uint64                `json:"id"`
	Nome         string                `json:"nome"`
	Descricao    null.String           `json:"descricao"`
	Departamento *ShortDepartamentoDTO `json:"departamento"`
	Cor          string                `json:"cor"`
	Ativo        bool                  `json:"ativo"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type ShortCategoriaDocumentoDTO struct {
	ID   uint64 `json:"id"`
	Nome string `json:"nome"`
	Cor  string `json:"cor"`
}
