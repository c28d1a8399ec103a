package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gedoc/internal/entities"
)

type CreateDepartamentoDTO struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=150"`
	Codigo    string  `json:"codigo" validate:"required,codigo"`
	Descricao *string `json:"descricao" validate:"omitempty,max=1000"`
	Ativo     *bool   `json:"ativo"`
}

// UpdateDepartamentoDTO re-executa as mesmas regras do create: PUT substitui o
// registro inteiro.
type UpdateDepartamentoDTO struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=150"`
	Codigo    string  `json:"codigo" validate:"required,codigo"`
	Descricao *string `json:"descricao" validate:"omitempty,max=1000"`
	Ativo     *bool   `json:"ativo"`
}

type DepartamentoDTO struct {
	ID        uint64      `json:"id"`
	Nome      string      `json:"nome"`
	Codigo    string      `json:"codigo"`
	Descricao null.String `json:"descricao"`
	Ativo     bool        `json:"ativo"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type ShortDepartamentoDTO struct {
	ID     uint64 `json:"id"`
	Nome   string `json:"nome"`
	Codigo string `json:"codigo"`
}

func DepartamentoFromEntity(e entities.Departamento) DepartamentoDTO {
	return DepartamentoDTO{
		ID:        e.ID,
		Nome:      e.Nome,
		Codigo:    e.Codigo,
		Descricao: e.Descricao,
		Ativo:     e.Ativo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func DepartamentosFromEntities(list []entities.Departamento) []DepartamentoDTO {
	out := make([]DepartamentoDTO, 0, len(list))
	for _, e := range list {
		out = append(out, DepartamentoFromEntity(e))
	}
	return out
}
