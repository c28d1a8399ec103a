package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	"gedoc/internal/repositories"
	"gedoc/pkg/config"
	"gedoc/pkg/constants"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/service"
	"gedoc/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, string, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UsuarioDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, string, error)
	Me(ctx context.Context, userID uint64) (*dto.UsuarioDTO, error)
	ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error
}

type AuthService struct {
	usuarioRepo       repositories.UsuarioRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	permissionService AuthPermissionServiceInterface
	jwtService        service.JWTService
	authConfig        config.AuthConfig
	logger            *zap.Logger
}

func NewAuthService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	permissionService AuthPermissionServiceInterface,
	jwtService service.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		usuarioRepo:       usuarioRepo,
		cache:             cache,
		permissionService: permissionService,
		jwtService:        jwtService,
		authConfig:        authConfig,
		logger:            logger,
	}
}

func loginAttemptsKey(username string) string {
	return "gedoc:login_attempts:" + username
}

// Login confere credenciais com contagem de tentativas no Redis: após o limite
// o usuário fica bloqueado pelo período configurado.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, string, error) {
	locked, err := s.isLocked(ctx, payload.Username)
	if err != nil {
		s.logger.Warn("contador de tentativas de login indisponível", zap.Error(err))
	}
	if locked {
		return nil, "", apperrors.NewUnauthorizedError(
			fmt.Sprintf("conta bloqueada temporariamente, tente novamente em %s", s.authConfig.LockoutDuration))
	}

	usuario, err := s.usuarioRepo.FindByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, payload.Username)
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !usuario.Ativo {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(usuario.Senha, payload.Senha); err != nil {
		s.registerFailedAttempt(ctx, payload.Username)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := s.cache.Delete(ctx, loginAttemptsKey(payload.Username)); err != nil {
		s.logger.Warn("falha ao zerar tentativas de login", zap.Error(err))
	}

	return s.issueTokens(ctx, usuario)
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.UsuarioDTO, error) {
	exists, err := s.usuarioRepo.UsernameExists(ctx, payload.Username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("o username %q já está em uso", payload.Username), nil)
	}

	hash, err := utils.HashPassword(payload.Senha)
	if err != nil {
		return nil, err
	}

	return s.usuarioRepo.Create(ctx, entities.Usuario{
		Nome:           payload.Nome,
		Apelido:        null.StringFromPtr(payload.Apelido),
		Username:       payload.Username,
		Senha:          hash,
		DepartamentoID: null.Uint64FromPtr(payload.DepartamentoID),
		Ativo:          true,
		// Auto-cadastro entra sempre com o papel básico.
		Roles: []string{constants.RoleUsuario},
	})
}

// Refresh troca um refresh token válido por um novo par de tokens, relendo
// papéis e permissões do banco.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, "", err
	}
	if !claims.IsRefreshToken {
		return nil, "", apperrors.ErrTokenIsNotRefresh
	}

	usuario, err := s.usuarioRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidToken
		}
		return nil, "", err
	}
	if !usuario.Ativo {
		return nil, "", apperrors.ErrUnauthorized
	}

	return s.issueTokens(ctx, usuario)
}

func (s *AuthService) Me(ctx context.Context, userID uint64) (*dto.UsuarioDTO, error) {
	return s.usuarioRepo.FindByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint64, payload dto.ChangePasswordDTO) error {
	perfil, err := s.usuarioRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	usuario, err := s.usuarioRepo.FindByUsername(ctx, perfil.Username)
	if err != nil {
		return err
	}
	if err := utils.ComparePasswords(usuario.Senha, payload.SenhaAtual); err != nil {
		return apperrors.NewValidationError("senha atual incorreta", nil)
	}
	hash, err := utils.HashPassword(payload.NovaSenha)
	if err != nil {
		return err
	}
	return s.usuarioRepo.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) issueTokens(ctx context.Context, usuario *entities.Usuario) (*dto.TokenPairDTO, string, error) {
	permissions, err := s.permissionService.GetPermissionsByRoles(ctx, usuario.Roles)
	if err != nil {
		return nil, "", err
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(dto.UserClaims{
		UserID:      usuario.ID,
		Username:    usuario.Username,
		Roles:       usuario.Roles,
		Permissions: permissions,
	})
	if err != nil {
		return nil, "", err
	}

	perfil, err := s.usuarioRepo.FindByID(ctx, usuario.ID)
	if err != nil {
		return nil, "", err
	}

	return &dto.TokenPairDTO{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtService.GetAccessTokenTTL().Seconds()),
		Usuario:     *perfil,
	}, refreshToken, nil
}

func (s *AuthService) isLocked(ctx context.Context, username string) (bool, error) {
	value, err := s.cache.Get(ctx, loginAttemptsKey(username))
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var attempts int
	if _, err := fmt.Sscanf(value, "%d", &attempts); err != nil {
		return false, nil
	}
	return attempts >= s.authConfig.MaxLoginAttempts, nil
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, username string) {
	key := loginAttemptsKey(username)
	attempts, err := s.cache.Increment(ctx, key)
	if err != nil {
		s.logger.Warn("falha ao registrar tentativa de login", zap.Error(err))
		return
	}
	// O TTL de bloqueio começa a contar na primeira falha.
	if attempts == 1 {
		if err := s.cache.Expire(ctx, key, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("falha ao definir expiração do bloqueio", zap.Error(err))
		}
	}
}
