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

type TipoDocumentoServiceInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.TipoDocumentoDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.TipoDocumentoDTO, error)
	Create(ctx context.Context, payload dto.CreateTipoDocumentoDTO) (*dto.TipoDocumentoDTO, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateTipoDocumentoDTO) (*dto.TipoDocumentoDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type TipoDocumentoService struct {
	repo   repositories.TipoDocumentoRepositoryInterface
	logger *zap.Logger
}

func NewTipoDocumentoService(repo repositories.TipoDocumentoRepositoryInterface, logger *zap.Logger) TipoDocumentoServiceInterface {
	return &TipoDocumentoService{repo: repo, logger: logger}
}

func (s *TipoDocumentoService) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.TipoDocumentoDTO], error) {
	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &types.PageResult[dto.TipoDocumentoDTO]{
		Items: dto.TiposDocumentoFromEntities(result.Items),
		Total: result.Total,
	}, nil
}

func (s *TipoDocumentoService) FindByID(ctx context.Context, id uint64) (*dto.TipoDocumentoDTO, error) {
	tipo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.TipoDocumentoFromEntity(*tipo)
	return &out, nil
}

func (s *TipoDocumentoService) Create(ctx context.Context, payload dto.CreateTipoDocumentoDTO) (*dto.TipoDocumentoDTO, error) {
	if err := s.checkCodigo(ctx, payload.Codigo, 0); err != nil {
		return nil, err
	}
	tipo, err := s.repo.Create(ctx, entities.TipoDocumento{
		Nome:      payload.Nome,
		Codigo:    payload.Codigo,
		Descricao: null.StringFromPtr(payload.Descricao),
		Ativo:     ativoOuPadrao(payload.Ativo),
	})
	if err != nil {
		return nil, err
	}
	out := dto.TipoDocumentoFromEntity(*tipo)
	return &out, nil
}

func (s *TipoDocumentoService) Update(ctx context.Context, id uint64, payload dto.UpdateTipoDocumentoDTO) (*dto.TipoDocumentoDTO, error) {
	if err := s.checkCodigo(ctx, payload.Codigo, id); err != nil {
		return nil, err
	}
	tipo, err := s.repo.Update(ctx, id, entities.TipoDocumento{
		Nome:      payload.Nome,
		Codigo:    payload.Codigo,
		Descricao: null.StringFromPtr(payload.Descricao),
		Ativo:     ativoOuPadrao(payload.Ativo),
	})
	if err != nil {
		return nil, err
	}
	out := dto.TipoDocumentoFromEntity(*tipo)
	return &out, nil
}

func (s *TipoDocumentoService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}

func (s *TipoDocumentoService) checkCodigo(ctx context.Context, codigo string, excludeID uint64) error {
	exists, err := s.repo.CodeExists(ctx, codigo, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewValidationError(
			fmt.Sprintf("já existe um tipo de documento com o código %q", codigo), nil)
	}
	return nil
}
