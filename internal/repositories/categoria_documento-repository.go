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

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

const categoriaTable = "categorias_documento"

// As listagens expandem o departamento dono via JOIN.
const categoriaSelect = `SELECT c.id, c.nome, c.descricao, c.cor, c.ativo, c.created_at, c.updated_at,
	d.id, d.nome, d.codigo
	FROM categorias_documento c
	JOIN departamentos d ON d.id = c.departamento_id`

var categoriaQuerySpec = querySpec{
	filterable: map[string]string{
		"ativo":          "c.ativo",
		"departamentoId": "c.departamento_id",
	},
	sortable: map[string]string{
		"id":        "c.id",
		"nome":      "c.nome",
		"createdAt": "c.created_at",
	},
	searchable:  []string{"c.nome", "c.descricao"},
	defaultSort: "c.created_at DESC",
}

type CategoriaDocumentoRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.CategoriaDocumentoDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.CategoriaDocumentoDTO, error)
	Create(ctx context.Context, categoria entities.CategoriaDocumento) (*dto.CategoriaDocumentoDTO, error)
	Update(ctx context.Context, id uint64, categoria entities.CategoriaDocumento) (*dto.CategoriaDocumentoDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type CategoriaDocumentoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCategoriaDocumentoRepository(storage *pgxpool.Pool, logger *zap.Logger) CategoriaDocumentoRepositoryInterface {
	return &CategoriaDocumentoRepository{storage: storage, logger: logger}
}

func scanCategoria(row pgx.Row) (*dto.CategoriaDocumentoDTO, error) {
	var (
		c    dto.CategoriaDocumentoDTO
		dept dto.ShortDepartamentoDTO
	)
	err := row.Scan(
		&c.ID, &c.Nome, &c.Descricao, &c.Cor, &c.Ativo, &c.CreatedAt, &c.UpdatedAt,
		&dept.ID, &dept.Nome, &dept.Codigo,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler categoria de documento: %w", err)
	}
	c.Departamento = &dept
	return &c, nil
}

func (r *CategoriaDocumentoRepository) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.CategoriaDocumentoDTO], error) {
	whereClause, args := buildWhere(filter, categoriaQuerySpec)
	orderClause := buildOrderBy(filter, categoriaQuerySpec)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s c %s", categoriaTable, whereClause)
	pageQuery := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d",
		categoriaSelect, whereClause, orderClause, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())

	var (
		total uint64
		items []dto.CategoriaDocumentoDTO
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
		items = make([]dto.CategoriaDocumentoDTO, 0, filter.Limit)
		for rows.Next() {
			c, err := scanCategoria(rows)
			if err != nil {
				return err
			}
			items = append(items, *c)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PageResult[dto.CategoriaDocumentoDTO]{Items: items, Total: total}, nil
}

func (r *CategoriaDocumentoRepository) FindByID(ctx context.Context, id uint64) (*dto.CategoriaDocumentoDTO, error) {
	query := categoriaSelect + " WHERE c.id = $1"
	return scanCategoria(r.storage.QueryRow(ctx, query, id))
}

func (r *CategoriaDocumentoRepository) Create(ctx context.Context, categoria entities.CategoriaDocumento) (*dto.CategoriaDocumentoDTO, error) {
	var id uint64
	query := fmt.Sprintf(`INSERT INTO %s (nome, descricao, departamento_id, cor, ativo)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`, categoriaTable)
	err := r.storage.QueryRow(ctx, query,
		categoria.Nome, categoria.Descricao, categoria.DepartamentoID, categoria.Cor, categoria.Ativo).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar categoria de documento: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *CategoriaDocumentoRepository) Update(ctx context.Context, id uint64, categoria entities.CategoriaDocumento) (*dto.CategoriaDocumentoDTO, error) {
	query, args, err := sq.Update(categoriaTable).
		PlaceholderFormat(sq.Dollar).
		Set("nome", categoria.Nome).
		Set("descricao", categoria.Descricao).
		Set("departamento_id", categoria.DepartamentoID).
		Set("cor", categoria.Cor).
		Set("ativo", categoria.Ativo).
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

func (r *CategoriaDocumentoRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", categoriaTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
