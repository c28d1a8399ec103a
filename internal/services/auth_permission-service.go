package services

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"gedoc/internal/repositories"
	apperrors "gedoc/pkg/errors"
)

const permissionCacheTTL = 10 * time.Minute

type AuthPermissionServiceInterface interface {
	GetPermissionsByRoles(ctx context.Context, roles []string) ([]string, error)
	InvalidateRoles(ctx context.Context, roles []string) error
}

// AuthPermissionService resolve papéis em permissões com cache no Redis.
// A queda do cache nunca derruba a resolução: o banco é a fonte da verdade.
type AuthPermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	cache          repositories.CacheRepositoryInterface
	logger         *zap.Logger
}

func NewAuthPermissionService(
	permissionRepo repositories.PermissionRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) AuthPermissionServiceInterface {
	return &AuthPermissionService{permissionRepo: permissionRepo, cache: cache, logger: logger}
}

func permissionCacheKey(role string) string {
	return "gedoc:permissions:" + role
}

// GetPermissionsByRoles resolve cada papel individualmente no cache e devolve
// a união ordenada. O cache por papel faz com que invalidar um papel atinja
// qualquer combinação que o contenha, independente da ordem dos papéis.
func (s *AuthPermissionService) GetPermissionsByRoles(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return []string{}, nil
	}

	uniao := map[string]struct{}{}
	for _, role := range roles {
		permissions, err := s.rolePermissions(ctx, role)
		if err != nil {
			return nil, err
		}
		for _, p := range permissions {
			uniao[p] = struct{}{}
		}
	}

	out := make([]string, 0, len(uniao))
	for p := range uniao {
		out = append(out, p)
	}
	slices.Sort(out)
	return out, nil
}

func (s *AuthPermissionService) rolePermissions(ctx context.Context, role string) ([]string, error) {
	key := permissionCacheKey(role)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var permissions []string
		if err := json.Unmarshal([]byte(cached), &permissions); err == nil {
			return permissions, nil
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("cache de permissões indisponível", zap.Error(err))
	}

	permissions, err := s.permissionRepo.GetPermissionNamesByRoles(ctx, []string{role})
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(permissions); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), permissionCacheTTL); err != nil {
			s.logger.Warn("falha ao gravar cache de permissões", zap.Error(err))
		}
	}
	return permissions, nil
}

// InvalidateRoles descarta o cache dos papéis alterados.
func (s *AuthPermissionService) InvalidateRoles(ctx context.Context, roles []string) error {
	keys := make([]string, 0, len(roles))
	for _, role := range roles {
		keys = append(keys, permissionCacheKey(role))
	}
	return s.cache.Delete(ctx, keys...)
}
