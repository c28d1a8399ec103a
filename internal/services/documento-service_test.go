package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gedoc/internal/dto"
	"gedoc/internal/entities"
	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/filestorage"
	"gedoc/pkg/types"
)

type fakeDocumentoRepo struct {
	docs           map[uint64]*dto.DocumentoDTO
	arquivoGravado *entities.ArquivoMetadata
}

func newFakeDocumentoRepo() *fakeDocumentoRepo {
	return &fakeDocumentoRepo{docs: map[uint64]*dto.DocumentoDTO{}}
}

func (f *fakeDocumentoRepo) List(_ context.Context, filter types.Filter) (*types.PageResult[dto.DocumentoDTO], error) {
	out := []dto.DocumentoDTO{}
	for _, d := range f.docs {
		if id, ok := filter.Filters["departamentoId"].(uint64); ok && d.Departamento.ID != id {
			continue
		}
		out = append(out, *d)
	}
	return &types.PageResult[dto.DocumentoDTO]{Items: out, Total: uint64(len(out))}, nil
}

func (f *fakeDocumentoRepo) FindByID(_ context.Context, id uint64) (*dto.DocumentoDTO, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	// Cópia, como uma leitura real do banco.
	copia := *d
	return &copia, nil
}

func (f *fakeDocumentoRepo) Create(_ context.Context, d entities.Documento) (*dto.DocumentoDTO, error) {
	id := uint64(len(f.docs) + 1)
	doc := &dto.DocumentoDTO{
		ID:            id,
		Titulo:        d.Titulo,
		Status:        d.Status,
		Departamento:  &dto.ShortDepartamentoDTO{ID: d.DepartamentoID},
		TipoDocumento: &dto.ShortTipoDocumentoDTO{ID: d.TipoDocumentoID},
	}
	if d.CriadoPor.Valid {
		doc.CriadoPor = &dto.ShortUsuarioDTO{ID: d.CriadoPor.Uint64}
	}
	f.docs[id] = doc
	return doc, nil
}

func (f *fakeDocumentoRepo) Update(_ context.Context, id uint64, d entities.Documento) (*dto.DocumentoDTO, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	doc.Titulo = d.Titulo
	doc.Status = d.Status
	return doc, nil
}

func (f *fakeDocumentoRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := f.docs[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeDocumentoRepo) UpdateArquivo(_ context.Context, id uint64, arquivo entities.ArquivoMetadata, _ null.Uint64) (*dto.DocumentoDTO, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	f.arquivoGravado = &arquivo
	doc.Arquivo = &dto.ArquivoDTO{
		ID:           arquivo.ID.String,
		URL:          arquivo.URL.String,
		NomeOriginal: arquivo.NomeOriginal.String,
		Tamanho:      arquivo.Tamanho.Int64,
	}
	return doc, nil
}

type fakeTipoRepo struct{ existentes map[uint64]bool }

func (f *fakeTipoRepo) List(context.Context, types.Filter) (*types.PageResult[entities.TipoDocumento], error) {
	return &types.PageResult[entities.TipoDocumento]{}, nil
}
func (f *fakeTipoRepo) FindByID(_ context.Context, id uint64) (*entities.TipoDocumento, error) {
	if !f.existentes[id] {
		return nil, apperrors.ErrNotFound
	}
	return &entities.TipoDocumento{ID: id}, nil
}
func (f *fakeTipoRepo) Create(_ context.Context, t entities.TipoDocumento) (*entities.TipoDocumento, error) {
	return &t, nil
}
func (f *fakeTipoRepo) Update(_ context.Context, _ uint64, t entities.TipoDocumento) (*entities.TipoDocumento, error) {
	return &t, nil
}
func (f *fakeTipoRepo) Delete(context.Context, uint64) error { return nil }
func (f *fakeTipoRepo) CodeExists(context.Context, string, uint64) (bool, error) {
	return false, nil
}

type fakeCategoriaRepo struct{}

func (fakeCategoriaRepo) List(context.Context, types.Filter) (*types.PageResult[dto.CategoriaDocumentoDTO], error) {
	return &types.PageResult[dto.CategoriaDocumentoDTO]{}, nil
}
func (fakeCategoriaRepo) FindByID(context.Context, uint64) (*dto.CategoriaDocumentoDTO, error) {
	return nil, apperrors.ErrNotFound
}
func (fakeCategoriaRepo) Create(context.Context, entities.CategoriaDocumento) (*dto.CategoriaDocumentoDTO, error) {
	return nil, nil
}
func (fakeCategoriaRepo) Update(context.Context, uint64, entities.CategoriaDocumento) (*dto.CategoriaDocumentoDTO, error) {
	return nil, nil
}
func (fakeCategoriaRepo) Delete(context.Context, uint64) error { return nil }

// fakeStorage registra as operações para as asserções de ordem.
type fakeStorage struct {
	saves   int
	deletes []string
}

func (f *fakeStorage) Save(_ context.Context, _ io.Reader, _ int64, originalName, _, prefix string) (filestorage.StoredFile, error) {
	f.saves++
	return filestorage.StoredFile{Key: prefix + "/" + originalName, URL: "http://files/" + originalName}, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func newDocumentoServiceParaTeste(docRepo *fakeDocumentoRepo, storage *fakeStorage) DocumentoServiceInterface {
	deptRepo := newFakeDepartamentoRepo()
	deptRepo.itens[1] = entities.Departamento{ID: 1, Nome: "RH", Codigo: "RH", Ativo: true}
	return NewDocumentoService(
		docRepo,
		deptRepo,
		&fakeTipoRepo{existentes: map[uint64]bool{2: true}},
		fakeCategoriaRepo{},
		storage,
		zap.NewNop(),
	)
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("arquivo", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["arquivo"][0]
}

func claimsDeTeste() *dto.UserClaims {
	return &dto.UserClaims{UserID: 9, Username: "ana"}
}

func TestDocumentoService_CreateStampaAutor(t *testing.T) {
	repo := newFakeDocumentoRepo()
	svc := newDocumentoServiceParaTeste(repo, &fakeStorage{})

	doc, err := svc.Create(context.Background(), dto.CreateDocumentoDTO{
		Titulo:          "Ofício 1/2026",
		DepartamentoID:  1,
		TipoDocumentoID: 2,
	}, claimsDeTeste())
	require.NoError(t, err)
	require.NotNil(t, doc.CriadoPor)
	assert.Equal(t, uint64(9), doc.CriadoPor.ID)
	assert.Equal(t, entities.StatusDraft, doc.Status, "status omitido assume draft")
}

func TestDocumentoService_CreateComReferenciaInvalida(t *testing.T) {
	svc := newDocumentoServiceParaTeste(newFakeDocumentoRepo(), &fakeStorage{})

	_, err := svc.Create(context.Background(), dto.CreateDocumentoDTO{
		Titulo:          "Ofício",
		DepartamentoID:  99,
		TipoDocumentoID: 2,
	}, claimsDeTeste())

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.CodeValidation, httpErr.ErrorCode)
}

func TestDocumentoService_UploadRejeitadoAntesDeGravar(t *testing.T) {
	repo := newFakeDocumentoRepo()
	storage := &fakeStorage{}
	svc := newDocumentoServiceParaTeste(repo, storage)

	doc, err := svc.Create(context.Background(), dto.CreateDocumentoDTO{
		Titulo: "Ofício", DepartamentoID: 1, TipoDocumentoID: 2,
	}, claimsDeTeste())
	require.NoError(t, err)

	// Bytes de executável com extensão disfarçada.
	fh := makeFileHeader(t, "planilha.xlsx", []byte{0x4D, 0x5A, 0x90, 0x00})
	_, err = svc.Upload(context.Background(), doc.ID, fh, claimsDeTeste())

	require.Error(t, err)
	assert.Zero(t, storage.saves, "nada pode chegar ao armazenamento")
}

func TestDocumentoService_UploadSubstituiArquivoAnterior(t *testing.T) {
	repo := newFakeDocumentoRepo()
	storage := &fakeStorage{}
	svc := newDocumentoServiceParaTeste(repo, storage)

	doc, err := svc.Create(context.Background(), dto.CreateDocumentoDTO{
		Titulo: "Ofício", DepartamentoID: 1, TipoDocumentoID: 2,
	}, claimsDeTeste())
	require.NoError(t, err)

	fh := makeFileHeader(t, "v1.pdf", []byte("%PDF-1.7 primeiro"))
	_, err = svc.Upload(context.Background(), doc.ID, fh, claimsDeTeste())
	require.NoError(t, err)

	fh2 := makeFileHeader(t, "v2.pdf", []byte("%PDF-1.7 segundo"))
	atualizado, err := svc.Upload(context.Background(), doc.ID, fh2, claimsDeTeste())
	require.NoError(t, err)

	assert.Equal(t, 2, storage.saves)
	assert.Equal(t, []string{"documentos/v1.pdf"}, storage.deletes, "o objeto antigo é removido")
	assert.Equal(t, "v2.pdf", atualizado.Arquivo.NomeOriginal)
}

func TestDocumentoService_DeleteRemoveArquivo(t *testing.T) {
	repo := newFakeDocumentoRepo()
	storage := &fakeStorage{}
	svc := newDocumentoServiceParaTeste(repo, storage)

	doc, err := svc.Create(context.Background(), dto.CreateDocumentoDTO{
		Titulo: "Ofício", DepartamentoID: 1, TipoDocumentoID: 2,
	}, claimsDeTeste())
	require.NoError(t, err)

	fh := makeFileHeader(t, "anexo.pdf", []byte("%PDF-1.7"))
	_, err = svc.Upload(context.Background(), doc.ID, fh, claimsDeTeste())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), doc.ID))
	assert.Contains(t, storage.deletes, "documentos/anexo.pdf")

	_, err = svc.FindByID(context.Background(), doc.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
