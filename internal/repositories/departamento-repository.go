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

const departamentoTable = "departamentos"

const departamentoColumns = "d.id, d.nome, d.codigo, d.descricao, d.ativo, d.created_at, d.updated_at"

var departamentoQuerySpec = querySpec{
	filterable: map[string]string{
		"ativo":  "d.ativo",
		"codigo": "d.codigo",
	},
	sortable: map[string]string{
		"id":        "d.id",
		"nome":      "d.nome",
		"codigo":    "d.codigo",
		"createdAt": "d.created_at",
	},
	searchable:  []string{"d.nome", "d.codigo", "d.descricao"},
	defaultSort: "d.created_at DESC",
}

type DepartamentoRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[entities.Departamento], error)
	FindByID(ctx context.Context, id uint64) (*entities.Departamento, error)
	Create(ctx context.Context, departamento entities.Departamento) (*entities.Departamento, error)
	Update(ctx context.Context, id uint64, departamento entities.Departamento) (*entities.Departamento, error)
	Delete(ctx context.Context, id uint64) error
	CodeExists(ctx context.Context, codigo string, excludeID uint64) (bool, error)
}

type DepartamentoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartamentoRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartamentoRepositoryInterface {
	return &DepartamentoRepository{storage: storage, logger: logger}
}

func scanDepartamento(row pgx.Row) (*entities.Departamento, error) {
	var d entities.Departamento
	err := row.Scan(&d.ID, &d.Nome, &d.Codigo, &d.Descricao, &d.Ativo, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler departamento: %w", err)
	}
	return &d, nil
}

// List executa o COUNT e a página em paralelo; os dois precisam terminar
// antes de responder.
func (r *DepartamentoRepository) List(ctx context.Context, filter types.Filter) (*types.PageResult[entities.Departamento], error) {
	whereClause, args := buildWhere(filter, departamentoQuerySpec)
	orderClause := buildOrderBy(filter, departamentoQuerySpec)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s d %s", departamentoTable, whereClause)
	pageQuery := fmt.Sprintf("SELECT %s FROM %s d %s %s LIMIT $%d OFFSET $%d",
		departamentoColumns, departamentoTable, whereClause, orderClause, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())

	var (
		total uint64
		items []entities.Departamento
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
		items = make([]entities.Departamento, 0, filter.Limit)
		for rows.Next() {
			d, err := scanDepartamento(rows)
			if err != nil {
				return err
			}
			items = append(items, *d)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PageResult[entities.Departamento]{Items: items, Total: total}, nil
}

func (r *DepartamentoRepository) FindByID(ctx context.Context, id uint64) (*entities.Departamento, error) {
	query := fmt.Sprintf("SELECT %s FROM %s d WHERE d.id = $1", departamentoColumns, departamentoTable)
	return scanDepartamento(r.storage.QueryRow(ctx, query, id))
}

func (r *DepartamentoRepository) Create(ctx context.Context, departamento entities.Departamento) (*entities.Departamento, error) {
	query := fmt.Sprintf(`INSERT INTO %s (nome, codigo, descricao, ativo) VALUES ($1, $2, $3, $4)
		RETURNING id, nome, codigo, descricao, ativo, created_at, updated_at`, departamentoTable)
	return scanDepartamento(r.storage.QueryRow(ctx, query,
		departamento.Nome, departamento.Codigo, departamento.Descricao, departamento.Ativo))
}

func (r *DepartamentoRepository) Update(ctx context.Context, id uint64, departamento entities.Departamento) (*entities.Departamento, error) {
	query, args, err := sq.Update(departamentoTable).
		PlaceholderFormat(sq.Dollar).
		Set("nome", departamento.Nome).
		Set("codigo", departamento.Codigo).
		Set("descricao", departamento.Descricao).
		Set("ativo", departamento.Ativo).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, nome, codigo, descricao, ativo, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanDepartamento(r.storage.QueryRow(ctx, query, args...))
}

func (r *DepartamentoRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", departamentoTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CodeExists sustenta a checagem ad hoc de unicidade de código; não existe
// constraint de unicidade no banco para isso.
func (r *DepartamentoRepository) CodeExists(ctx context.Context, codigo string, excludeID uint64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE codigo = $1 AND id <> $2)", departamentoTable)
	if err := r.storage.QueryRow(ctx, query, codigo, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
