package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gedoc/pkg/constants"
	"gedoc/pkg/utils"
)

// rolePermissions define a matriz papel→permissões semeada no banco.
// O papel admin não precisa de vínculos: ele passa direto na autorização.
var rolePermissions = map[string][]string{
	constants.RoleAdmin: constants.AllPermissions,
	constants.RoleGestor: {
		constants.CadastrosVisualizar,
		constants.CadastrosGerenciar,
		constants.DocumentosVisualizar,
		constants.DocumentosCriar,
		constants.DocumentosEditar,
		constants.DocumentosExcluir,
		constants.RelatoriosExportar,
	},
	constants.RoleUsuario: {
		constants.CadastrosVisualizar,
		constants.DocumentosVisualizar,
		constants.DocumentosCriar,
	},
}

// Run aplica todos os seeds de forma idempotente: rodar duas vezes não
// duplica registros.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if err := seedRoles(ctx, pool); err != nil {
		return err
	}
	if err := seedPermissions(ctx, pool); err != nil {
		return err
	}
	if err := seedRolePermissions(ctx, pool); err != nil {
		return err
	}
	if err := seedAdminUser(ctx, pool, logger); err != nil {
		return err
	}
	logger.Info("seeds aplicados")
	return nil
}

func seedRoles(ctx context.Context, pool *pgxpool.Pool) error {
	for _, role := range []string{constants.RoleAdmin, constants.RoleGestor, constants.RoleUsuario} {
		_, err := pool.Exec(ctx,
			"INSERT INTO roles (nome) VALUES ($1) ON CONFLICT (nome) DO NOTHING", role)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPermissions(ctx context.Context, pool *pgxpool.Pool) error {
	for _, permission := range constants.AllPermissions {
		_, err := pool.Exec(ctx,
			"INSERT INTO permissions (nome) VALUES ($1) ON CONFLICT (nome) DO NOTHING", permission)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedRolePermissions(ctx context.Context, pool *pgxpool.Pool) error {
	for role, permissions := range rolePermissions {
		for _, permission := range permissions {
			_, err := pool.Exec(ctx,
				`INSERT INTO role_permissions (role_id, permission_id)
				 SELECT r.id, p.id FROM roles r, permissions p
				 WHERE r.nome = $1 AND p.nome = $2
				 ON CONFLICT DO NOTHING`, role, permission)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAdminUser cria o usuário admin/admin123 apenas quando ainda não existe.
// A senha deve ser trocada no primeiro acesso em qualquer ambiente real.
func seedAdminUser(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	var exists bool
	if err := pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM usuarios WHERE username = 'admin')").Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	var id uint64
	err = pool.QueryRow(ctx,
		`INSERT INTO usuarios (nome, username, senha, ativo)
		 VALUES ('Administrador', 'admin', $1, TRUE) RETURNING id`, hash).Scan(&id)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO usuario_roles (usuario_id, role_id)
		 SELECT $1, id FROM roles WHERE nome = $2`, id, constants.RoleAdmin)
	if err != nil {
		return err
	}

	logger.Info("usuário admin criado", zap.Uint64("id", id))
	return nil
}
