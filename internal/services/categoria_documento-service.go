package services

import (
	"context"
	"errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	"gedoc/internal/repositories"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

type CategoriaDocumentoServiceInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.CategoriaDocumentoDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.CategoriaDocumentoDTO, error)
	Create(ctx context.Context, payload dto.CreateCategoriaDocumentoDTO) (*dto.CategoriaDocumentoDTO, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateCategoriaDocumentoDTO) (*dto.CategoriaDocumentoDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type CategoriaDocumentoService struct {
	repo             repositories.CategoriaDocumentoRepositoryInterface
	departamentoRepo repositories.DepartamentoRepositoryInterface
	logger           *zap.Logger
}

func NewCategoriaDocumentoService(
	repo repositories.CategoriaDocumentoRepositoryInterface,
	departamentoRepo repositories.DepartamentoRepositoryInterface,
	logger *zap.Logger,
) CategoriaDocumentoServiceInterface {
	return &CategoriaDocumentoService{repo: repo, departamentoRepo: departamentoRepo, logger: logger}
}

func (s *CategoriaDocumentoService) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.CategoriaDocumentoDTO], error) {
	return s.repo.List(ctx, filter)
}

func (s *CategoriaDocumentoService) FindByID(ctx context.Context, id uint64) (*dto.CategoriaDocumentoDTO, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoriaDocumentoService) Create(ctx context.Context, payload dto.CreateCategoriaDocumentoDTO) (*dto.CategoriaDocumentoDTO, error) {
	if err := s.checkDepartamento(ctx, payload.DepartamentoID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, entities.CategoriaDocumento{
		Nome:           payload.Nome,
		Descricao:      null.StringFromPtr(payload.Descricao),
		DepartamentoID: payload.DepartamentoID,
		Cor:            payload.Cor,
		Ativo:          ativoOuPadrao(payload.Ativo),
	})
}

func (s *CategoriaDocumentoService) Update(ctx context.Context, id uint64, payload dto.UpdateCategoriaDocumentoDTO) (*dto.CategoriaDocumentoDTO, error) {
	if err := s.checkDepartamento(ctx, payload.DepartamentoID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, entities.CategoriaDocumento{
		Nome:           payload.Nome,
		Descricao:      null.StringFromPtr(payload.Descricao),
		DepartamentoID: payload.DepartamentoID,
		Cor:            payload.Cor,
		Ativo:          ativoOuPadrao(payload.Ativo),
	})
}

func (s *CategoriaDocumentoService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

// checkDepartamento distingue "departamento inexistente" (400 de validação) de
// "categoria inexistente" (404 do próprio recurso).
func (s *CategoriaDocumentoService) checkDepartamento(ctx context.Context, departamentoID uint64) error {
	_, err := s.departamentoRepo.FindByID(ctx, departamentoID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewValidationError("departamento informado não existe", nil)
	}
	return err
}
