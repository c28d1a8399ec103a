package services

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	"gedoc/internal/repositories"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

type DepartamentoServiceInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.DepartamentoDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.DepartamentoDTO, error)
	Create(ctx context.Context, payload dto.CreateDepartamentoDTO) (*dto.DepartamentoDTO, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateDepartamentoDTO) (*dto.DepartamentoDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type DepartamentoService struct {
	repo   repositories.DepartamentoRepositoryInterface
	logger *zap.Logger
}

func NewDepartamentoService(repo repositories.DepartamentoRepositoryInterface, logger *zap.Logger) DepartamentoServiceInterface {
	return &DepartamentoService{repo: repo, logger: logger}
}

func (s *DepartamentoService) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.DepartamentoDTO], error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &types.PageResult[dto.DepartamentoDTO]{
		Items: dto.DepartamentosFromEntities(result.Items),
		Total: result.Total,
	}, nil
}

func (s *DepartamentoService) FindByID(ctx context.Context, id uint64) (*dto.DepartamentoDTO, error) {
	departamento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.DepartamentoFromEntity(*departamento)
	return &out, nil
}

func (s *DepartamentoService) Create(ctx context.Context, payload dto.CreateDepartamentoDTO) (*dto.DepartamentoDTO, error) {
	if err := s.checkCodigo(ctx, payload.Codigo, 0); err != nil {
		return nil, err
	}
	departamento, err := s.repo.Create(ctx, entities.Departamento{
		Nome:      payload.Nome,
		Codigo:    payload.Codigo,
		Descricao: null.StringFromPtr(payload.Descricao),
		Ativo:     ativoOuPadrao(payload.Ativo),
	})
	if err != nil {
		return nil, err
	}
	out := dto.DepartamentoFromEntity(*departamento)
	return &out, nil
}

func (s *DepartamentoService) Update(ctx context.Context, id uint64, payload dto.UpdateDepartamentoDTO) (*dto.DepartamentoDTO, error) {
	if err := s.checkCodigo(ctx, payload.Codigo, id); err != nil {
		return nil, err
	}
	departamento, err := s.repo.Update(ctx, id, entities.Departamento{
		Nome:      payload.Nome,
		Codigo:    payload.Codigo,
		Descricao: null.StringFromPtr(payload.Descricao),
		Ativo:     ativoOuPadrao(payload.Ativo),
	})
	if err != nil {
		return nil, err
	}
	out := dto.DepartamentoFromEntity(*departamento)
	return &out, nil
}

func (s *DepartamentoService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

// checkCodigo mantém a unicidade do código no nível da aplicação.
func (s *DepartamentoService) checkCodigo(ctx context.Context, codigo string, excludeID uint64) error {
	exists, err := s.repo.CodeExists(ctx, codigo, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewValidationError(
			fmt.Sprintf("já existe um departamento com o código %q", codigo), nil)
	}
	return nil
}

// ativoOuPadrao aplica o padrão "ativo" quando o cliente omite o campo.
func ativoOuPadrao(ativo *bool) bool {
	if ativo == nil {
		return true
	}
	return *ativo
}
