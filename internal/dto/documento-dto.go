package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateDocumentoDTO struct {
	Titulo          string  `json:"titulo" validate:"required,min=2,max=255"`
	Descricao       *string `json:"descricao" validate:"omitempty,max=5000"`
	DepartamentoID  uint64  `json:"departamentoId" validate:"required,gt=0"`
	TipoDocumentoID uint64  `json:"tipoDocumentoId" validate:"required,gt=0"`
	CategoriaID     *uint64 `json:"categoriaId" validate:"omitempty,gt=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=draft pending approved rejected archived"`

	NumeroProtocolo  *string `json:"numeroProtocolo" validate:"omitempty,max=50"`
	NumeroReferencia *string `json:"numeroReferencia" validate:"omitempty,max=50"`
	Assunto          *string `json:"assunto" validate:"omitempty,max=255"`
	Remetente        *string `json:"remetente" validate:"omitempty,max=150"`
	Destinatario     *string `json:"destinatario" validate:"omitempty,max=150"`

	// Recebido ou enviado, nunca os dois.
	DataRecebimento *time.Time `json:"dataRecebimento" validate:"omitempty,excluded_with=DataEnvio"`
	DataEnvio       *time.Time `json:"dataEnvio"`

	Tags []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
}

// UpdateDocumentoDTO tem as mesmas regras do create: o PUT substitui o
// documento inteiro e a validação roda de novo no servidor.
type UpdateDocumentoDTO struct {
	Titulo          string  `json:"titulo" validate:"required,min=2,max=255"`
	Descricao       *string `json:"descricao" validate:"omitempty,max=5000"`
	DepartamentoID  uint64  `json:"departamentoId" validate:"required,gt=0"`
	TipoDocumentoID uint64  `json:"tipoDocumentoId" validate:"required,gt=0"`
	CategoriaID     *uint64 `json:"categoriaId" validate:"omitempty,gt=0"`
	Status          string  `json:"status" validate:"omitempty,oneof=draft pending approved rejected archived"`

	NumeroProtocolo  *string `json:"numeroProtocolo" validate:"omitempty,max=50"`
	NumeroReferencia *string `json:"numeroReferencia" validate:"omitempty,max=50"`
	Assunto          *string `json:"assunto" validate:"omitempty,max=255"`
	Remetente        *string `json:"remetente" validate:"omitempty,max=150"`
	Destinatario     *string `json:"destinatario" validate:"omitempty,max=150"`

	DataRecebimento *time.Time `json:"dataRecebimento" validate:"omitempty,excluded_with=DataEnvio"`
	DataEnvio       *time.Time `json:"dataEnvio"`

	Tags []string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
}

type ArquivoDTO struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	NomeOriginal string `json:"nomeOriginal"`
	Formato      string `json:"formato"`
	Tamanho      int64  `json:"tamanho"`
}

type ShortUsuarioDTO struct {
	ID   uint64 `json:"id"`
	Nome string `json:"nome"`
}

// DocumentoDTO é a resposta com as referências expandidas.
type DocumentoDTO struct {
	ID            uint64                      `json:"id"`
	Titulo        string                      `json:"titulo"`
	Descricao     null.String                 `json:"descricao"`
	Departamento  *ShortDepartamentoDTO       `json:"departamento"`
	TipoDocumento *ShortTipoDocumentoDTO      `json:"tipoDocumento"`
	Categoria     *ShortCategoriaDocumentoDTO `json:"categoria"`
	Status        string                      `json:"status"`

	NumeroProtocolo  null.String `json:"numeroProtocolo"`
	NumeroReferencia null.String `json:"numeroReferencia"`
	Assunto          null.String `json:"assunto"`
	Remetente        null.String `json:"remetente"`
	Destinatario     null.String `json:"destinatario"`

	DataRecebimento null.Time `json:"dataRecebimento"`
	DataEnvio       null.Time `json:"dataEnvio"`

	Tags    []string    `json:"tags"`
	Arquivo *ArquivoDTO `json:"arquivo"`

	CriadoPor     *ShortUsuarioDTO `json:"criadoPor"`
	AtualizadoPor *ShortUsuarioDTO `json:"atualizadoPor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
