package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gedoc/pkg/constants"
)

type fakePermissionRepo struct {
	consultas int
}

func (f *fakePermissionRepo) GetPermissionNamesByRoles(_ context.Context, roles []string) ([]string, error) {
	f.consultas++
	if len(roles) == 0 {
		return []string{}, nil
	}
	switch roles[0] {
	case constants.RoleGestor:
		return []string{constants.DocumentosVisualizar, constants.RelatoriosExportar}, nil
	case constants.RoleAdmin:
		return []string{constants.UsuariosGerenciar}, nil
	}
	return []string{}, nil
}

func TestAuthPermissionService_CacheEvitaSegundaConsulta(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := NewAuthPermissionService(repo, newFakeCache(), zap.NewNop())
	ctx := context.Background()

	primeira, err := svc.GetPermissionsByRoles(ctx, []string{constants.RoleGestor})
	require.NoError(t, err)
	assert.Contains(t, primeira, constants.DocumentosVisualizar)
	assert.Equal(t, 1, repo.consultas)

	segunda, err := svc.GetPermissionsByRoles(ctx, []string{constants.RoleGestor})
	require.NoError(t, err)
	assert.Equal(t, primeira, segunda)
	assert.Equal(t, 1, repo.consultas, "a segunda resolução sai do cache")
}

func TestAuthPermissionService_InvalidateForcaNovaConsulta(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := NewAuthPermissionService(repo, newFakeCache(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetPermissionsByRoles(ctx, []string{constants.RoleGestor})
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateRoles(ctx, []string{constants.RoleGestor}))

	_, err = svc.GetPermissionsByRoles(ctx, []string{constants.RoleGestor})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.consultas)
}

func TestAuthPermissionService_InvalidateAtingeCombinacoes(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := NewAuthPermissionService(repo, newFakeCache(), zap.NewNop())
	ctx := context.Background()

	// O cache é por papel: a combinação consulta cada papel uma vez e devolve
	// a união.
	permissions, err := svc.GetPermissionsByRoles(ctx, []string{constants.RoleAdmin, constants.RoleGestor})
	require.NoError(t, err)
	assert.Contains(t, permissions, constants.UsuariosGerenciar)
	assert.Contains(t, permissions, constants.DocumentosVisualizar)
	assert.Equal(t, 2, repo.consultas)

	// A ordem dos papéis não gera entradas de cache distintas.
	_, err = svc.GetPermissionsByRoles(ctx, []string{constants.RoleGestor, constants.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.consultas)

	require.NoError(t, svc.InvalidateRoles(ctx, []string{constants.RoleGestor}))

	_, err = svc.GetPermissionsByRoles(ctx, []string{constants.RoleAdmin, constants.RoleGestor})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.consultas, "só o papel invalidado volta ao banco")
}

func TestAuthPermissionService_SemPapeis(t *testing.T) {
	repo := &fakePermissionRepo{}
	svc := NewAuthPermissionService(repo, newFakeCache(), zap.NewNop())

	permissions, err := svc.GetPermissionsByRoles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, permissions)
	assert.Zero(t, repo.consultas)
}
