package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gedoc/internal/entities"
	"gedoc/pkg/types"
)

// O relatório reaproveita o querySpec dos documentos: os mesmos filtros da
// listagem valem para a exportação.
const relatorioSelect = `SELECT doc.id, doc.titulo, doc.status, doc.numero_protocolo,
	d.nome AS departamento, t.nome AS tipo_documento, c.nome AS categoria,
	doc.remetente, doc.destinatario, doc.data_recebimento, doc.data_envio,
	uc.nome AS criado_por, doc.created_at
	FROM documentos doc
	JOIN departamentos d ON d.id = doc.departamento_id
	JOIN tipos_documento t ON t.id = doc.tipo_documento_id
	LEFT JOIN categorias_documento c ON c.id = doc.categoria_id
	LEFT JOIN usuarios uc ON uc.id = doc.criado_por`

const relatorioMaxLinhas = 10000

type RelatorioRepositoryInterface interface {
	ListDocumentos(ctx context.Context, filter types.Filter) ([]entities.RelatorioDocumento, error)
}

type RelatorioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRelatorioRepository(storage *pgxpool.Pool, logger *zap.Logger) RelatorioRepositoryInterface {
	return &RelatorioRepository{storage: storage, logger: logger}
}

func (r *RelatorioRepository) ListDocumentos(ctx context.Context, filter types.Filter) ([]entities.RelatorioDocumento, error) {
	whereClause, args := buildWhere(filter, documentoQuerySpec)
	orderClause := buildOrderBy(filter, documentoQuerySpec)

	query := fmt.Sprintf("%s %s %s LIMIT $%d", relatorioSelect, whereClause, orderClause, len(args)+1)
	args = append(args, relatorioMaxLinhas)

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	linhas := []entities.RelatorioDocumento{}
	for rows.Next() {
		var l entities.RelatorioDocumento
		err := rows.Scan(
			&l.ID, &l.Titulo, &l.Status, &l.NumeroProtocolo,
			&l.Departamento, &l.TipoDocumento, &l.Categoria,
			&l.Remetente, &l.Destinatario, &l.DataRecebimento, &l.DataEnvio,
			&l.CriadoPor, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler linha do relatório: %w", err)
		}
		linhas = append(linhas, l)
	}
	return linhas, rows.Err()
}
