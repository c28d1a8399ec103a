package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

const documentoTable = "documentos"

// Expansão das referências: departamento e tipo são obrigatórios (JOIN),
// categoria e usuários são opcionais (LEFT JOIN).
const documentoSelect = `SELECT doc.id, doc.titulo, doc.descricao, doc.status,
	doc.numero_protocolo, doc.numero_referencia, doc.assunto, doc.remetente, doc.destinatario,
	doc.data_recebimento, doc.data_envio, doc.tags,
	doc.arquivo_id, doc.arquivo_url, doc.arquivo_nome_original, doc.arquivo_formato, doc.arquivo_tamanho,
	doc.created_at, doc.updated_at,
	d.id, d.nome, d.codigo,
	t.id, t.nome, t.codigo,
	c.id, c.nome, c.cor,
	uc.id, uc.nome,
	ua.id, ua.nome
	FROM documentos doc
	JOIN departamentos d ON d.id = doc.departamento_id
	JOIN tipos_documento t ON t.id = doc.tipo_documento_id
	LEFT JOIN categorias_documento c ON c.id = doc.categoria_id
	LEFT JOIN usuarios uc ON uc.id = doc.criado_por
	LEFT JOIN usuarios ua ON ua.id = doc.atualizado_por`

// A busca livre cobre exatamente título, descrição e números de protocolo e
// referência.
var documentoQuerySpec = querySpec{
	filterable: map[string]string{
		"departamentoId":  "doc.departamento_id",
		"tipoDocumentoId": "doc.tipo_documento_id",
		"categoriaId":     "doc.categoria_id",
		"status":          "doc.status",
		"remetente":       "doc.remetente",
		"destinatario":    "doc.destinatario",
		"criadoPor":       "doc.criado_por",
		"dataRecebimento": "doc.data_recebimento",
		"dataEnvio":       "doc.data_envio",
	},
	sortable: map[string]string{
		"id":              "doc.id",
		"titulo":          "doc.titulo",
		"status":          "doc.status",
		"createdAt":       "doc.created_at",
		"dataRecebimento": "doc.data_recebimento",
		"dataEnvio":       "doc.data_envio",
	},
	searchable:  []string{"doc.titulo", "doc.descricao", "doc.numero_protocolo", "doc.numero_referencia"},
	defaultSort: "doc.created_at DESC",
}

type DocumentoRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.DocumentoDTO, error)
	Create(ctx context.Context, documento entities.Documento) (*dto.DocumentoDTO, error)
	Update(ctx context.Context, id uint64, documento entities.Documento) (*dto.DocumentoDTO, error)
	Delete(ctx context.Context, id uint64) error
	UpdateArquivo(ctx context.Context, id uint64, arquivo entities.ArquivoMetadata, atualizadoPor null.Uint64) (*dto.DocumentoDTO, error)
}

type DocumentoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDocumentoRepository(storage *pgxpool.Pool, logger *zap.Logger) DocumentoRepositoryInterface {
	return &DocumentoRepository{storage: storage, logger: logger}
}

func scanDocumento(row pgx.Row) (*dto.DocumentoDTO, error) {
	var (
		doc  dto.DocumentoDTO
		dept dto.ShortDepartamentoDTO
		tipo dto.ShortTipoDocumentoDTO

		arquivoID, arquivoURL, arquivoNome, arquivoFormato null.String
		arquivoTamanho                                     null.Int64

		categoriaID           null.Uint64
		categoriaNome, catCor null.String

		criadoPorID, atualizadoPorID     null.Uint64
		criadoPorNome, atualizadoPorNome null.String
	)

	err := row.Scan(
		&doc.ID, &doc.Titulo, &doc.Descricao, &doc.Status,
		&doc.NumeroProtocolo, &doc.NumeroReferencia, &doc.Assunto, &doc.Remetente, &doc.Destinatario,
		&doc.DataRecebimento, &doc.DataEnvio, &doc.Tags,
		&arquivoID, &arquivoURL, &arquivoNome, &arquivoFormato, &arquivoTamanho,
		&doc.CreatedAt, &doc.UpdatedAt,
		&dept.ID, &dept.Nome, &dept.Codigo,
		&tipo.ID, &tipo.Nome, &tipo.Codigo,
		&categoriaID, &categoriaNome, &catCor,
		&criadoPorID, &criadoPorNome,
		&atualizadoPorID, &atualizadoPorNome,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler documento: %w", err)
	}

	doc.Departamento = &dept
	doc.TipoDocumento = &tipo
	if categoriaID.Valid {
		doc.Categoria = &dto.ShortCategoriaDocumentoDTO{
			ID:   categoriaID.Uint64,
			Nome: categoriaNome.String,
			Cor:  catCor.String,
		}
	}
	if arquivoID.Valid {
		doc.Arquivo = &dto.ArquivoDTO{
			ID:           arquivoID.String,
			URL:          arquivoURL.String,
			NomeOriginal: arquivoNome.String,
			Formato:      arquivoFormato.String,
			Tamanho:      arquivoTamanho.Int64,
		}
	}
	if criadoPorID.Valid {
		doc.CriadoPor = &dto.ShortUsuarioDTO{ID: criadoPorID.Uint64, Nome: criadoPorNome.String}
	}
	if atualizadoPorID.Valid {
		doc.AtualizadoPor = &dto.ShortUsuarioDTO{ID: atualizadoPorID.Uint64, Nome: atualizadoPorNome.String}
	}
	return &doc, nil
}

func (r *DocumentoRepository) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error) {
	whereClause, args := buildWhere(filter, documentoQuerySpec)
	orderClause := buildOrderBy(filter, documentoQuerySpec)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s doc %s", documentoTable, whereClause)
	pageQuery := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d",
		documentoSelect, whereClause, orderClause, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())

	var (
		total uint64
		items []dto.DocumentoDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.storage.QueryRow(gctx, countQuery, args...).Scan(&total)
	})
	g.Go(func() error {
		rows, err := r.storage.Query(gctx, pageQuery, pageArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()
		items = make([]dto.DocumentoDTO, 0, filter.Limit)
		for rows.Next() {
			doc, err := scanDocumento(rows)
			if err != nil {
				return err
			}
			items = append(items, *doc)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PageResult[dto.DocumentoDTO]{Items: items, Total: total}, nil
}

func (r *DocumentoRepository) FindByID(ctx context.Context, id uint64) (*dto.DocumentoDTO, error) {
	return scanDocumento(r.storage.QueryRow(ctx, documentoSelect+" WHERE doc.id = $1", id))
}

func (r *DocumentoRepository) Create(ctx context.Context, documento entities.Documento) (*dto.DocumentoDTO, error) {
	var id uint64
	query := fmt.Sprintf(`INSERT INTO %s
		(titulo, descricao, departamento_id, tipo_documento_id, categoria_id, status,
		 numero_protocolo, numero_referencia, assunto, remetente, destinatario,
		 data_recebimento, data_envio, tags, criado_por, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`, documentoTable)
	err := r.storage.QueryRow(ctx, query,
		documento.Titulo, documento.Descricao, documento.DepartamentoID, documento.TipoDocumentoID,
		documento.CategoriaID, documento.Status,
		documento.NumeroProtocolo, documento.NumeroReferencia, documento.Assunto,
		documento.Remetente, documento.Destinatario,
		documento.DataRecebimento, documento.DataEnvio, documento.Tags,
		documento.CriadoPor, documento.AtualizadoPor,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar documento: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *DocumentoRepository) Update(ctx context.Context, id uint64, documento entities.Documento) (*dto.DocumentoDTO, error) {
	query, args, err := sq.Update(documentoTable).
		PlaceholderFormat(sq.Dollar).
		Set("titulo", documento.Titulo).
		Set("descricao", documento.Descricao).
		Set("departamento_id", documento.DepartamentoID).
		Set("tipo_documento_id", documento.TipoDocumentoID).
		Set("categoria_id", documento.CategoriaID).
		Set("status", documento.Status).
		Set("numero_protocolo", documento.NumeroProtocolo).
		Set("numero_referencia", documento.NumeroReferencia).
		Set("assunto", documento.Assunto).
		Set("remetente", documento.Remetente).
		Set("destinatario", documento.Destinatario).
		Set("data_recebimento", documento.DataRecebimento).
		Set("data_envio", documento.DataEnvio).
		Set("tags", documento.Tags).
		Set("atualizado_por", documento.AtualizadoPor).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *DocumentoRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", documentoTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateArquivo copia os metadados do arquivo enviado para o registro.
func (r *DocumentoRepository) UpdateArquivo(ctx context.Context, id uint64, arquivo entities.ArquivoMetadata, atualizadoPor null.Uint64) (*dto.DocumentoDTO, error) {
	query, args, err := sq.Update(documentoTable).
		PlaceholderFormat(sq.Dollar).
		Set("arquivo_id", arquivo.ID).
		Set("arquivo_url", arquivo.URL).
		Set("arquivo_nome_original", arquivo.NomeOriginal).
		Set("arquivo_formato", arquivo.Formato).
		Set("arquivo_tamanho", arquivo.Tamanho).
		Set("atualizado_por", atualizadoPor).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindByID(ctx, id)
}
