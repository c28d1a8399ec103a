package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gedoc/internal/entities"
)

type CreateTipoDocumentoDTO struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=150"`
	Codigo    string  `json:"codigo" validate:"required,codigo"`
	Descricao *string `json:"descricao" validate:"omitempty,max=1000"`
	Ativo     *bool   `json:"ativo"`
}

type UpdateTipoDocumentoDTO struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=150"`
	Codigo    string  `json:"codigo" validate:"required,codigo"`
	Descricao *string `json:"descricao" validate:"omitempty,max=1000"`
	Ativo     *bool   `json:"ativo"`
}

type TipoDocumentoDTO struct {
	ID        uint64      `json:"id"`
	Nome      string      `json:"nome"`
	Codigo    string      `json:"codigo"`
	Descricao null.String `json:"descricao"`
	Ativo     bool        `json:"ativo"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type ShortTipoDocumentoDTO struct {
	ID     uint64 `json:"id"`
	Nome   string `json:"nome"`
	Codigo string `json:"codigo"`
}

func TipoDocumentoFromEntity(e entities.TipoDocumento) TipoDocumentoDTO {
	return TipoDocumentoDTO{
		ID:        e.ID,
		Nome:      e.Nome,
		Codigo:    e.Codigo,
		Descricao: e.Descricao,
		Ativo:     e.Ativo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func TiposDocumentoFromEntities(list []entities.TipoDocumento) []TipoDocumentoDTO {
	out := make([]TipoDocumentoDTO, 0, len(list))
	for _, e := range list {
		out = append(out, TipoDocumentoFromEntity(e))
	}
	return out
}
