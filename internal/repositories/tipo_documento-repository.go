package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gedoc/internal/entities"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

const tipoDocumentoTable = "tipos_documento"

const tipoDocumentoColumns = "t.id, t.nome, t.codigo, t.descricao, t.ativo, t.created_at, t.updated_at"

var tipoDocumentoQuerySpec = querySpec{
	filterable: map[string]string{
		"ativo":  "t.ativo",
		"codigo": "t.codigo",
	},
	sortable: map[string]string{
		"id":        "t.id",
		"nome":      "t.nome",
		"codigo":    "t.codigo",
		"createdAt": "t.created_at",
	},
	searchable:  []string{"t.nome", "t.codigo", "t.descricao"},
	defaultSort: "t.created_at DESC",
}

type TipoDocumentoRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[entities.TipoDocumento], error)
	FindByID(ctx context.Context, id uint64) (*entities.TipoDocumento, error)
	Create(ctx context.Context, tipo entities.TipoDocumento) (*entities.TipoDocumento, error)
	Update(ctx context.Context, id uint64, tipo entities.TipoDocumento) (*entities.TipoDocumento, error)
	Delete(ctx context.Context, id uint64) error
	CodeExists(ctx context.Context, codigo string, excludeID uint64) (bool, error)
}

type TipoDocumentoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTipoDocumentoRepository(storage *pgxpool.Pool, logger *zap.Logger) TipoDocumentoRepositoryInterface {
	return &TipoDocumentoRepository{storage: storage, logger: logger}
}

func scanTipoDocumento(row pgx.Row) (*entities.TipoDocumento, error) {
	var t entities.TipoDocumento
	err := row.Scan(&t.ID, &t.Nome, &t.Codigo, &t.Descricao, &t.Ativo, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler tipo de documento: %w", err)
	}
	return &t, nil
}

func (r *TipoDocumentoRepository) List(ctx context.Context, filter types.Filter) (*types.PageResult[entities.TipoDocumento], error) {
	whereClause, args := buildWhere(filter, tipoDocumentoQuerySpec)
	orderClause := buildOrderBy(filter, tipoDocumentoQuerySpec)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s t %s", tipoDocumentoTable, whereClause)
	pageQuery := fmt.Sprintf("SELECT %s FROM %s t %s %s LIMIT $%d OFFSET $%d",
		tipoDocumentoColumns, tipoDocumentoTable, whereClause, orderClause, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())

	var (
		total uint64
		items []entities.TipoDocumento
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
		items = make([]entities.TipoDocumento, 0, filter.Limit)
		for rows.Next() {
			t, err := scanTipoDocumento(rows)
			if err != nil {
				return err
			}
			items = append(items, *t)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PageResult[entities.TipoDocumento]{Items: items, Total: total}, nil
}

func (r *TipoDocumentoRepository) FindByID(ctx context.Context, id uint64) (*entities.TipoDocumento, error) {
	query := fmt.Sprintf("SELECT %s FROM %s t WHERE t.id = $1", tipoDocumentoColumns, tipoDocumentoTable)
	return scanTipoDocumento(r.storage.QueryRow(ctx, query, id))
}

func (r *TipoDocumentoRepository) Create(ctx context.Context, tipo entities.TipoDocumento) (*entities.TipoDocumento, error) {
	query := fmt.Sprintf(`INSERT INTO %s (nome, codigo, descricao, ativo) VALUES ($1, $2, $3, $4)
		RETURNING id, nome, codigo, descricao, ativo, created_at, updated_at`, tipoDocumentoTable)
	return scanTipoDocumento(r.storage.QueryRow(ctx, query, tipo.Nome, tipo.Codigo, tipo.Descricao, tipo.Ativo))
}

func (r *TipoDocumentoRepository) Update(ctx context.Context, id uint64, tipo entities.TipoDocumento) (*entities.TipoDocumento, error) {
	query, args, err := sq.Update(tipoDocumentoTable).
		PlaceholderFormat(sq.Dollar).
		Set("nome", tipo.Nome).
		Set("codigo", tipo.Codigo).
		Set("descricao", tipo.Descricao).
		Set("ativo", tipo.Ativo).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, nome, codigo, descricao, ativo, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanTipoDocumento(r.storage.QueryRow(ctx, query, args...))
}

func (r *TipoDocumentoRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", tipoDocumentoTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TipoDocumentoRepository) CodeExists(ctx context.Context, codigo string, excludeID uint64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE codigo = $1 AND id <> $2)", tipoDocumentoTable)
	if err := r.storage.QueryRow(ctx, query, codigo, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
