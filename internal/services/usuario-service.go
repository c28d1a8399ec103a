package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	"gedoc/internal/repositories"
	"gedoc/pkg/constants"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
	"gedoc/pkg/utils"
)

type UsuarioServiceInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.UsuarioDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.UsuarioDTO, error)
	Create(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateUsuarioDTO) (*dto.UsuarioDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type UsuarioService struct {
	repo              repositories.UsuarioRepositoryInterface
	permissionService AuthPermissionServiceInterface
	logger            *zap.Logger
}

func NewUsuarioService(
	repo repositories.UsuarioRepositoryInterface,
	permissionService AuthPermissionServiceInterface,
	logger *zap.Logger,
) UsuarioServiceInterface {
	return &UsuarioService{repo: repo, permissionService: permissionService, logger: logger}
}

func (s *UsuarioService) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.UsuarioDTO], error) {
	return s.repo.List(ctx, filter)
}

func (s *UsuarioService) FindByID(ctx context.Context, id uint64) (*dto.UsuarioDTO, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UsuarioService) Create(ctx context.Context, payload dto.CreateUsuarioDTO) (*dto.UsuarioDTO, error) {
	if err := s.checkUsername(ctx, payload.Username, 0); err != nil {
		return nil, err
	}
	if err := validarRoles(payload.Roles); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(payload.Senha)
	if err != nil {
		return nil, err
	}

	roles := payload.Roles
	if len(roles) == 0 {
		roles = []string{constants.RoleUsuario}
	}

	return s.repo.Create(ctx, entities.Usuario{
		Nome:           payload.Nome,
		Apelido:        null.StringFromPtr(payload.Apelido),
		Username:       payload.Username,
		Senha:          hash,
		DepartamentoID: null.Uint64FromPtr(payload.DepartamentoID),
		Ativo:          ativoOuPadrao(payload.Ativo),
		Roles:          roles,
	})
}

func (s *UsuarioService) Update(ctx context.Context, id uint64, payload dto.UpdateUsuarioDTO) (*dto.UsuarioDTO, error) {
	if err := s.checkUsername(ctx, payload.Username, id); err != nil {
		return nil, err
	}
	if err := validarRoles(payload.Roles); err != nil {
		return nil, err
	}

	roles := payload.Roles
	if len(roles) == 0 {
		roles = []string{constants.RoleUsuario}
	}

	atualizado, err := s.repo.Update(ctx, id, entities.Usuario{
		Nome:           payload.Nome,
		Apelido:        null.StringFromPtr(payload.Apelido),
		Username:       payload.Username,
		DepartamentoID: null.Uint64FromPtr(payload.DepartamentoID),
		Ativo:          ativoOuPadrao(payload.Ativo),
		Roles:          roles,
	})
	if err != nil {
		return nil, err
	}
	if err := s.permissionService.InvalidateRoles(ctx, roles); err != nil {
		s.logger.Warn("falha ao invalidar cache de permissões", zap.Error(err))
	}
	return atualizado, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

func (s *UsuarioService) checkUsername(ctx context.Context, username string, excludeID uint64) error {
	exists, err := s.repo.UsernameExists(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewValidationError(
			fmt.Sprintf("o username %q já está em uso", username), nil)
	}
	return nil
}

func validarRoles(roles []string) error {
	for _, role := range roles {
		switch role {
		case constants.RoleAdmin, constants.RoleGestor, constants.RoleUsuario:
		default:
			return apperrors.NewValidationError(fmt.Sprintf("papel desconhecido: %q", role), nil)
		}
	}
	return nil
}
