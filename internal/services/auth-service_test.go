package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	"gedoc/pkg/config"
	"gedoc/pkg/constants"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/service"
	"gedoc/pkg/types"
	"gedoc/pkg/utils"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entities.Usuario
	ultimoID uint64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[string]*entities.Usuario{}}
}

func (f *fakeUsuarioRepo) adicionar(t *testing.T, username, senha string, roles []string, ativo bool) *entities.Usuario {
	t.Helper()
	hash, err := utils.HashPassword(senha)
	require.NoError(t, err)
	f.ultimoID++
	u := &entities.Usuario{ID: f.ultimoID, Nome: username, Username: username, Senha: hash, Ativo: ativo, Roles: roles}
	f.usuarios[username] = u
	return u
}

func (f *fakeUsuarioRepo) List(context.Context, types.Filter) (*types.PageResult[dto.UsuarioDTO], error) {
	return &types.PageResult[dto.UsuarioDTO]{}, nil
}

func (f *fakeUsuarioRepo) FindByID(_ context.Context, id uint64) (*dto.UsuarioDTO, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			return &dto.UsuarioDTO{ID: u.ID, Nome: u.Nome, Username: u.Username, Roles: u.Roles, Ativo: u.Ativo}, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*entities.Usuario, error) {
	u, ok := f.usuarios[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u entities.Usuario) (*dto.UsuarioDTO, error) {
	f.ultimoID++
	u.ID = f.ultimoID
	f.usuarios[u.Username] = &u
	return &dto.UsuarioDTO{ID: u.ID, Nome: u.Nome, Username: u.Username, Roles: u.Roles, Ativo: u.Ativo}, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, id uint64, u entities.Usuario) (*dto.UsuarioDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeUsuarioRepo) Delete(context.Context, uint64) error { return nil }

func (f *fakeUsuarioRepo) UpdatePassword(_ context.Context, id uint64, senhaHash string) error {
	for _, u := range f.usuarios {
		if u.ID == id {
			u.Senha = senhaHash
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeUsuarioRepo) UsernameExists(_ context.Context, username string, excludeID uint64) (bool, error) {
	u, ok := f.usuarios[username]
	return ok && u.ID != excludeID, nil
}

func (f *fakeUsuarioRepo) GetRolesByUserID(_ context.Context, id uint64) ([]string, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			return u.Roles, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// fakeCache imita o Redis para contadores e cache de permissões.
type fakeCache struct {
	valores   map[string]string
	contagens map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{valores: map[string]string{}, contagens: map[string]int64{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.valores[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrNotFound
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.valores[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.valores, k)
		delete(f.contagens, k)
	}
	return nil
}

func (f *fakeCache) Increment(_ context.Context, key string) (int64, error) {
	f.contagens[key]++
	n := f.contagens[key]
	f.valores[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (f *fakeCache) Expire(context.Context, string, time.Duration) error { return nil }

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.valores[key]
	return ok, nil
}

type fakePermissionService struct{}

func (fakePermissionService) GetPermissionsByRoles(_ context.Context, roles []string) ([]string, error) {
	if len(roles) > 0 && roles[0] == constants.RoleGestor {
		return []string{constants.DocumentosVisualizar, constants.DocumentosCriar}, nil
	}
	return []string{}, nil
}

func (fakePermissionService) InvalidateRoles(context.Context, []string) error { return nil }

func newAuthServiceParaTeste(t *testing.T, repo *fakeUsuarioRepo, cache *fakeCache) AuthServiceInterface {
	t.Helper()
	jwtSvc := service.NewJWTService("segredo-de-teste-auth", time.Hour, 24*time.Hour)
	authCfg := config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}
	return NewAuthService(repo, cache, fakePermissionService{}, jwtSvc, authCfg, zap.NewNop())
}

func TestAuthService_LoginComSucesso(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "maria", "senha-forte-123", []string{constants.RoleGestor}, true)
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	tokens, refresh, err := svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, "maria", tokens.Usuario.Username)
}

func TestAuthService_SenhaErrada(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "maria", "senha-forte-123", nil, true)
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	_, _, err := svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "errada"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_UsuarioInexistenteMesmoErro(t *testing.T) {
	svc := newAuthServiceParaTeste(t, newFakeUsuarioRepo(), newFakeCache())

	// Usuário inexistente e senha errada produzem a mesma resposta.
	_, _, err := svc.Login(context.Background(), dto.LoginDTO{Username: "fantasma", Senha: "x"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_UsuarioInativo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "desligado", "senha-forte-123", nil, false)
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	_, _, err := svc.Login(context.Background(), dto.LoginDTO{Username: "desligado", Senha: "senha-forte-123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_BloqueioAposTentativas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "maria", "senha-forte-123", nil, true)
	cache := newFakeCache()
	svc := newAuthServiceParaTeste(t, repo, cache)

	for i := 0; i < 3; i++ {
		_, _, err := svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "errada"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Mesmo com a senha certa, a conta está bloqueada.
	_, _, err := svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "senha-forte-123"})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Code)
}

func TestAuthService_LoginZeraContador(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "maria", "senha-forte-123", nil, true)
	cache := newFakeCache()
	svc := newAuthServiceParaTeste(t, repo, cache)

	_, _, _ = svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "errada"})
	_, _, err := svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)

	existe, _ := cache.Exists(context.Background(), "gedoc:login_attempts:maria")
	assert.False(t, existe)
}

func TestAuthService_RefreshExigeRefreshToken(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "maria", "senha-forte-123", []string{constants.RoleGestor}, true)
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	tokens, refresh, err := svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "senha-forte-123"})
	require.NoError(t, err)

	// Access token no lugar do refresh é rejeitado.
	_, _, err = svc.Refresh(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	novo, _, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, novo.AccessToken)
}

func TestAuthService_RegisterDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.adicionar(t, "maria", "senha-forte-123", nil, true)
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	_, err := svc.Register(context.Background(), dto.RegisterDTO{
		Nome: "Outra Maria", Username: "maria", Senha: "outra-senha-123",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.CodeValidation, httpErr.ErrorCode)
}

func TestAuthService_RegisterRecebePapelBasico(t *testing.T) {
	repo := newFakeUsuarioRepo()
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	usuario, err := svc.Register(context.Background(), dto.RegisterDTO{
		Nome: "João", Username: "joao", Senha: "senha-forte-123",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{constants.RoleUsuario}, usuario.Roles)
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := repo.adicionar(t, "maria", "senha-antiga-123", nil, true)
	svc := newAuthServiceParaTeste(t, repo, newFakeCache())

	err := svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordDTO{
		SenhaAtual: "errada", NovaSenha: "senha-nova-123",
	})
	require.Error(t, err)

	err = svc.ChangePassword(context.Background(), u.ID, dto.ChangePasswordDTO{
		SenhaAtual: "senha-antiga-123", NovaSenha: "senha-nova-123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), dto.LoginDTO{Username: "maria", Senha: "senha-nova-123"})
	assert.NoError(t, err)
}
