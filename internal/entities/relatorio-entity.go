package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// RelatorioDocumento é a linha achatada usada na exportação XLSX.
type RelatorioDocumento struct {
	ID              uint64      `db:"id"`
	Titulo          string      `db:"titulo"`
	Status          string      `db:"status"`
	NumeroProtocolo null.String `db:"numero_protocolo"`
	Departamento    string      `db:"departamento"`
	TipoDocumento   string      `db:"tipo_documento"`
	Categoria       null.String `db:"categoria"`
	Remetente       null.String `db:"remetente"`
	Destinatario    null.String `db:"destinatario"`
	DataRecebimento null.Time   `db:"data_recebimento"`
	DataEnvio       null.Time   `db:"data_envio"`
	CriadoPor       null.String `db:"criado_por"`
	CreatedAt       time.Time   `db:"created_at"`
}
