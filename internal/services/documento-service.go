package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gedoc/config"
	"gedoc/internal/dto"
	"gedoc/internal/entities"
	"gedoc/internal/repositories"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/filestorage"
	"gedoc/pkg/types"
	"gedoc/pkg/validation"
)

const uploadContextDocumento = "documento"

type DocumentoServiceInterface interface {
	List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error)
	ListByDepartamento(ctx context.Context, departamentoID uint64, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error)
	ListByTipo(ctx context.Context, tipoDocumentoID uint64, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error)
	FindByID(ctx context.Context, id uint64) (*dto.DocumentoDTO, error)
	Create(ctx context.Context, payload dto.CreateDocumentoDTO, claims *dto.UserClaims) (*dto.DocumentoDTO, error)
	Update(ctx context.Context, id uint64, payload dto.UpdateDocumentoDTO, claims *dto.UserClaims) (*dto.DocumentoDTO, error)
	Delete(ctx context.Context, id uint64) error
	Upload(ctx context.Context, id uint64, fileHeader *multipart.FileHeader, claims *dto.UserClaims) (*dto.DocumentoDTO, error)
}

type DocumentoService struct {
	repo             repositories.DocumentoRepositoryInterface
	departamentoRepo repositories.DepartamentoRepositoryInterface
	tipoRepo         repositories.TipoDocumentoRepositoryInterface
	categoriaRepo    repositories.CategoriaDocumentoRepositoryInterface
	storage          filestorage.FileStorage
	logger           *zap.Logger
}

func NewDocumentoService(
	repo repositories.DocumentoRepositoryInterface,
	departamentoRepo repositories.DepartamentoRepositoryInterface,
	tipoRepo repositories.TipoDocumentoRepositoryInterface,
	categoriaRepo repositories.CategoriaDocumentoRepositoryInterface,
	storage filestorage.FileStorage,
	logger *zap.Logger,
) DocumentoServiceInterface {
	return &DocumentoService{
		repo:             repo,
		departamentoRepo: departamentoRepo,
		tipoRepo:         tipoRepo,
		categoriaRepo:    categoriaRepo,
		storage:          storage,
		logger:           logger,
	}
}

func (s *DocumentoService) List(ctx context.Context, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error) {
	return s.repo.List(ctx, filter)
}

// ListByDepartamento é a listagem geral com o filtro de departamento travado
// pela rota; um filtro conflitante na query string é sobrescrito.
func (s *DocumentoService) ListByDepartamento(ctx context.Context, departamentoID uint64, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error) {
	if _, err := s.departamentoRepo.FindByID(ctx, departamentoID); err != nil {
		return nil, err
	}
	if filter.Filters == nil {
		filter.Filters = map[string]any{}
	}
	filter.Filters["departamentoId"] = departamentoID
	return s.repo.List(ctx, filter)
}

func (s *DocumentoService) ListByTipo(ctx context.Context, tipoDocumentoID uint64, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error) {
	if _, err := s.tipoRepo.FindByID(ctx, tipoDocumentoID); err != nil {
		return nil, err
	}
	if filter.Filters == nil {
		filter.Filters = map[string]any{}
	}
	filter.Filters["tipoDocumentoId"] = tipoDocumentoID
	return s.repo.List(ctx, filter)
}

func (s *DocumentoService) FindByID(ctx context.Context, id uint64) (*dto.DocumentoDTO, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DocumentoService) Create(ctx context.Context, payload dto.CreateDocumentoDTO, claims *dto.UserClaims) (*dto.DocumentoDTO, error) {
	documento, err := s.montarDocumento(ctx, payload.DepartamentoID, payload.TipoDocumentoID, payload.CategoriaID, payload)
	if err != nil {
		return nil, err
	}
	documento.CriadoPor = null.Uint64From(claims.UserID)
	documento.AtualizadoPor = null.Uint64From(claims.UserID)
	return s.repo.Create(ctx, *documento)
}

func (s *DocumentoService) Update(ctx context.Context, id uint64, payload dto.UpdateDocumentoDTO, claims *dto.UserClaims) (*dto.DocumentoDTO, error) {
	documento, err := s.montarDocumento(ctx, payload.DepartamentoID, payload.TipoDocumentoID, payload.CategoriaID, dto.CreateDocumentoDTO(payload))
	if err != nil {
		return nil, err
	}
	documento.AtualizadoPor = null.Uint64From(claims.UserID)
	return s.repo.Update(ctx, id, *documento)
}

func (s *DocumentoService) Delete(ctx context.Context, id uint64) error {
	documento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// O registro já foi removido; falha ao limpar o objeto órfão só gera log.
	if documento.Arquivo != nil {
		if err := s.storage.Delete(ctx, documento.Arquivo.ID); err != nil {
			s.logger.Warn("falha ao remover arquivo do documento excluído",
				zap.Uint64("documentoId", id), zap.String("arquivoId", documento.Arquivo.ID), zap.Error(err))
		}
	}
	return nil
}

// Upload valida o arquivo antes de tocar o armazenamento, grava o objeto novo,
// atualiza os metadados e por fim descarta o objeto substituído.
func (s *DocumentoService) Upload(ctx context.Context, id uint64, fileHeader *multipart.FileHeader, claims *dto.UserClaims) (*dto.DocumentoDTO, error) {
	atual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("não foi possível ler o arquivo enviado")
	}
	defer file.Close()

	if err := validation.ValidateFile(fileHeader, file, uploadContextDocumento); err != nil {
		return nil, err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	prefix := config.UploadContexts[uploadContextDocumento].PathPrefix
	stored, err := s.storage.Save(ctx, file, fileHeader.Size, fileHeader.Filename, contentType, prefix)
	if err != nil {
		return nil, err
	}

	atualizado, err := s.repo.UpdateArquivo(ctx, id, entities.ArquivoMetadata{
		ID:           null.StringFrom(stored.Key),
		URL:          null.StringFrom(stored.URL),
		NomeOriginal: null.StringFrom(fileHeader.Filename),
		Formato:      null.StringFrom(contentType),
		Tamanho:      null.Int64From(fileHeader.Size),
	}, null.Uint64From(claims.UserID))
	if err != nil {
		// Metadados não gravados: o objeto recém-subido ficaria órfão.
		if delErr := s.storage.Delete(ctx, stored.Key); delErr != nil {
			s.logger.Warn("falha ao descartar upload não confirmado",
				zap.String("arquivoId", stored.Key), zap.Error(delErr))
		}
		return nil, err
	}

	if atual.Arquivo != nil && atual.Arquivo.ID != stored.Key {
		if err := s.storage.Delete(ctx, atual.Arquivo.ID); err != nil {
			s.logger.Warn("falha ao remover arquivo substituído",
				zap.Uint64("documentoId", id), zap.String("arquivoId", atual.Arquivo.ID), zap.Error(err))
		}
	}

	return atualizado, nil
}

// montarDocumento traduz o payload em entidade, validando as referências.
func (s *DocumentoService) montarDocumento(ctx context.Context, departamentoID, tipoID uint64, categoriaID *uint64, payload dto.CreateDocumentoDTO) (*entities.Documento, error) {
	if _, err := s.departamentoRepo.FindByID(ctx, departamentoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("departamento informado não existe", nil)
		}
		return nil, err
	}
	if _, err := s.tipoRepo.FindByID(ctx, tipoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("tipo de documento informado não existe", nil)
		}
		return nil, err
	}
	if categoriaID != nil {
		if _, err := s.categoriaRepo.FindByID(ctx, *categoriaID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("categoria informada não existe", nil)
			}
			return nil, err
		}
	}

	status := payload.Status
	if status == "" {
		status = entities.StatusDraft
	}

	var categoria null.Uint64
	if categoriaID != nil {
		categoria = null.Uint64From(*categoriaID)
	}

	return &entities.Documento{
		Titulo:           payload.Titulo,
		Descricao:        null.StringFromPtr(payload.Descricao),
		DepartamentoID:   departamentoID,
		TipoDocumentoID:  tipoID,
		CategoriaID:      categoria,
		Status:           status,
		NumeroProtocolo:  null.StringFromPtr(payload.NumeroProtocolo),
		NumeroReferencia: null.StringFromPtr(payload.NumeroReferencia),
		Assunto:          null.StringFromPtr(payload.Assunto),
		Remetente:        null.StringFromPtr(payload.Remetente),
		Destinatario:     null.StringFromPtr(payload.Destinatario),
		DataRecebimento:  null.TimeFromPtr(payload.DataRecebimento),
		DataEnvio:        null.TimeFromPtr(payload.DataEnvio),
		Tags:             payload.Tags,
	}, nil
}
