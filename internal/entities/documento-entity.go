package entities

import (
	"github.com/aarondl/null/v8"

	"gedoc/pkg/types"
)

// Status de ciclo de vida do documento. Não há máquina de estados: qualquer
// valor válido pode ser gravado em qualquer atualização.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusArchived = "archived"
)

const MaxTags = 10

type Documento struct {
	ID              uint64      `json:"id" db:"id"`
	Titulo          string      `json:"titulo" db:"titulo"`
	Descricao       null.String `json:"descricao" db:"descricao"`
	DepartamentoID  uint64      `json:"departamentoId" db:"departamento_id"`
	TipoDocumentoID uint64      `json:"tipoDocumentoId" db:"tipo_documento_id"`
	CategoriaID     null.Uint64 `json:"categoriaId" db:"categoria_id"`
	Status          string      `json:"status" db:"status"`

	NumeroProtocolo  null.String `json:"numeroProtocolo" db:"numero_protocolo"`
	NumeroReferencia null.String `json:"numeroReferencia" db:"numero_referencia"`
	Assunto          null.String `json:"assunto" db:"assunto"`
	Remetente        null.String `json:"remetente" db:"remetente"`
	Destinatario     null.String `json:"destinatario" db:"destinatario"`

	// Um documento é recebido ou enviado, nunca os dois.
	DataRecebimento null.Time `json:"dataRecebimento" db:"data_recebimento"`
	DataEnvio       null.Time `json:"dataEnvio" db:"data_envio"`

	Tags []string `json:"tags" db:"tags"`

	Arquivo ArquivoMetadata `json:"arquivo"`

	CriadoPor     null.Uint64 `json:"criadoPor" db:"criado_por"`
	AtualizadoPor null.Uint64 `json:"atualizadoPor" db:"atualizado_por"`

	types.BaseEntity
}

// ArquivoMetadata são os metadados do anexo no armazenamento de objetos.
type ArquivoMetadata struct {
	ID           null.String `json:"id" db:"arquivo_id"`
	URL          null.String `json:"url" db:"arquivo_url"`
	NomeOriginal null.String `json:"nomeOriginal" db:"arquivo_nome_original"`
	Formato      null.String `json:"formato" db:"arquivo_formato"`
	Tamanho      null.Int64  `json:"tamanho" db:"arquivo_tamanho"`
}

func (a ArquivoMetadata) Presente() bool {
	return a.ID.Valid
}

// AllStatuses alimenta validação e filtros.
var AllStatuses = []string{StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusArchived}
