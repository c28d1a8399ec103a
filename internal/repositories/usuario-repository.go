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

const usuarioTable = "usuarios"

const usuarioSelect = `SELECT u.id, u.nome, u.apelido, u.username, u.senha, u.ativo, u.created_at, u.updated_at,
	d.id, d.nome, d.codigo,
	COALESCE(array_agg(r.nome) FILTER (WHERE r.nome IS NOT NULL), '{}') AS roles
	FROM usuarios u
	LEFT JOIN departamentos d ON d.id = u.departamento_id
	LEFT JOIN usuario_roles ur ON ur.usuario_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id`

const usuarioGroupBy = "GROUP BY u.id, d.id"

var usuarioQuerySpec = querySpec{
	filterable: map[string]string{
		"ativo":          "u.ativo",
		"departamentoId": "u.departamento_id",
	},
	sortable: map[string]string{
		"id":        "u.id",
		"nome":      "u.nome",
		"username":  "u.username",
		"createdAt": "u.created_at",
	},
	searchable:  []string{"u.nome", "u.apelido", "u.username"},
	defaultSort: "u.created_at DESC",
}

type UsuarioRepositoryInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.UsuarioDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.UsuarioDTO, error)
	FindByUsername(ctx context.Context, username string) (*entities.Usuario, error)
	Create(ctx context.Context, usuario entities.Usuario) (*dto.UsuarioDTO, error)
	Update(ctx context.Context, id uint64, usuario entities.Usuario) (*dto.UsuarioDTO, error)
	Delete(ctx context.Context, id uint64) error
	UpdatePassword(ctx context.Context, id uint64, senhaHash string) error
	UsernameExists(ctx context.Context, username string, excludeID uint64) (bool, error)
	GetRolesByUserID(ctx context.Context, id uint64) ([]string, error)
}

type UsuarioRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUsuarioRepository(storage *pgxpool.Pool, logger *zap.Logger) UsuarioRepositoryInterface {
	return &UsuarioRepository{storage: storage, logger: logger}
}

func scanUsuario(row pgx.Row) (*dto.UsuarioDTO, string, error) {
	var (
		u     dto.UsuarioDTO
		senha string

		deptID           null.Uint64
		deptNome, deptCd null.String
	)
	err := row.Scan(
		&u.ID, &u.Nome, &u.Apelido, &u.Username, &senha, &u.Ativo, &u.CreatedAt, &u.UpdatedAt,
		&deptID, &deptNome, &deptCd,
		&u.Roles,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", apperrors.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("falha ao ler usuário: %w", err)
	}
	if deptID.Valid {
		u.Departamento = &dto.ShortDepartamentoDTO{ID: deptID.Uint64, Nome: deptNome.String, Codigo: deptCd.String}
	}
	return &u, senha, nil
}

func (r *UsuarioRepository) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.UsuarioDTO], error) {
	whereClause, args := buildWhere(filter, usuarioQuerySpec)
	orderClause := buildOrderBy(filter, usuarioQuerySpec)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s u %s", usuarioTable, whereClause)
	pageQuery := fmt.Sprintf("%s %s %s %s LIMIT $%d OFFSET $%d",
		usuarioSelect, whereClause, usuarioGroupBy, orderClause, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), filter.Limit, filter.Offset())

	var (
		total uint64
		items []dto.UsuarioDTO
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
		items = make([]dto.UsuarioDTO, 0, filter.Limit)
		for rows.Next() {
			u, _, err := scanUsuario(rows)
			if err != nil {
				return err
			}
			items = append(items, *u)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.PageResult[dto.UsuarioDTO]{Items: items, Total: total}, nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id uint64) (*dto.UsuarioDTO, error) {
	query := fmt.Sprintf("%s WHERE u.id = $1 %s", usuarioSelect, usuarioGroupBy)
	u, _, err := scanUsuario(r.storage.QueryRow(ctx, query, id))
	return u, err
}

// FindByUsername retorna a entidade completa, com o hash da senha, para o
// fluxo de login.
func (r *UsuarioRepository) FindByUsername(ctx context.Context, username string) (*entities.Usuario, error) {
	query := fmt.Sprintf("%s WHERE u.username = $1 %s", usuarioSelect, usuarioGroupBy)
	u, senha, err := scanUsuario(r.storage.QueryRow(ctx, query, username))
	if err != nil {
		return nil, err
	}
	usuario := entities.Usuario{
		ID:       u.ID,
		Nome:     u.Nome,
		Apelido:  u.Apelido,
		Username: u.Username,
		Senha:    senha,
		Ativo:    u.Ativo,
		Roles:    u.Roles,
	}
	if u.Departamento != nil {
		usuario.DepartamentoID = null.Uint64From(u.Departamento.ID)
	}
	usuario.CreatedAt = u.CreatedAt
	usuario.UpdatedAt = u.UpdatedAt
	return &usuario, nil
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario entities.Usuario) (*dto.UsuarioDTO, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id uint64
	query := fmt.Sprintf(`INSERT INTO %s (nome, apelido, username, senha, departamento_id, ativo)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`, usuarioTable)
	err = tx.QueryRow(ctx, query,
		usuario.Nome, usuario.Apelido, usuario.Username, usuario.Senha,
		usuario.DepartamentoID, usuario.Ativo).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar usuário: %w", err)
	}
	if err := setRolesTx(ctx, tx, id, usuario.Roles); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *UsuarioRepository) Update(ctx context.Context, id uint64, usuario entities.Usuario) (*dto.UsuarioDTO, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query, args, err := sq.Update(usuarioTable).
		PlaceholderFormat(sq.Dollar).
		Set("nome", usuario.Nome).
		Set("apelido", usuario.Apelido).
		Set("username", usuario.Username).
		Set("departamento_id", usuario.DepartamentoID).
		Set("ativo", usuario.Ativo).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	if err := setRolesTx(ctx, tx, id, usuario.Roles); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// setRolesTx substitui por completo os vínculos usuário→role.
func setRolesTx(ctx context.Context, tx pgx.Tx, usuarioID uint64, roles []string) error {
	if _, err := tx.Exec(ctx, "DELETE FROM usuario_roles WHERE usuario_id = $1", usuarioID); err != nil {
		return err
	}
	for _, role := range roles {
		_, err := tx.Exec(ctx,
			`INSERT INTO usuario_roles (usuario_id, role_id)
			 SELECT $1, id FROM roles WHERE nome = $2`, usuarioID, role)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *UsuarioRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", usuarioTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) UpdatePassword(ctx context.Context, id uint64, senhaHash string) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET senha = $1, updated_at = NOW() WHERE id = $2", usuarioTable), senhaHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) UsernameExists(ctx context.Context, username string, excludeID uint64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE username = $1 AND id <> $2)", usuarioTable)
	if err := r.storage.QueryRow(ctx, query, username, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UsuarioRepository) GetRolesByUserID(ctx context.Context, id uint64) ([]string, error) {
	rows, err := r.storage.Query(ctx,
		`SELECT r.nome FROM roles r
		 JOIN usuario_roles ur ON ur.role_id = r.id
		 WHERE ur.usuario_id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []string{}
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, err
		}
		roles = append(roles, nome)
	}
	return roles, rows.Err()
}
