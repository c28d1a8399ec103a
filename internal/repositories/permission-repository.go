package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PermissionRepositoryInterface interface {
	GetPermissionNamesByRoles(ctx context.Context, roles []string) ([]string, error)
}

type PermissionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPermissionRepository(storage *pgxpool.Pool, logger *zap.Logger) PermissionRepositoryInterface {
	return &PermissionRepository{storage: storage, logger: logger}
}

func (r *PermissionRepository) GetPermissionNamesByRoles(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return []string{}, nil
	}
	rows, err := r.storage.Query(ctx,
		`SELECT DISTINCT p.nome
		 FROM permissions p
		 JOIN role_permissions rp ON rp.permission_id = p.id
		 JOIN roles r ON r.id = rp.role_id
		 WHERE r.nome = ANY($1)`, roles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	permissions := []string{}
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, err
		}
		permissions = append(permissions, nome)
	}
	return permissions, rows.Err()
}
