package validation

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gedoc/pkg/errors"
)

// makeFileHeader monta um multipart.FileHeader real a partir do conteúdo dado.
func makeFileHeader(t *testing.T, filename string, content []byte) (*multipart.FileHeader, multipart.File) {
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

	fh := req.MultipartForm.File["arquivo"][0]
	file, err := fh.Open()
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return fh, file
}

func TestValidateFile_PDFAceito(t *testing.T) {
	fh, file := makeFileHeader(t, "oficio.pdf", []byte("%PDF-1.7 conteúdo qualquer"))
	err := ValidateFile(fh, file, "documento")
	assert.NoError(t, err)
}

func TestValidateFile_ConteudoMandaSobreExtensao(t *testing.T) {
	// Extensão .pdf mas bytes de executável: rejeitado pelo sniffing.
	fh, file := makeFileHeader(t, "malicioso.pdf", []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00})
	err := ValidateFile(fh, file, "documento")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.CodeValidation, httpErr.ErrorCode)
}

func TestValidateFile_OfficeAceito(t *testing.T) {
	// OOXML é um zip e o doc/xls antigo é um contêiner OLE; o sniffing sozinho
	// só enxerga application/zip e application/octet-stream.
	ooxml := append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("resto do pacote")...)
	ole := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, []byte("resto do fluxo")...)

	casos := []struct {
		nome     string
		conteudo []byte
	}{
		{"oficio.docx", ooxml},
		{"planilha.xlsx", ooxml},
		{"oficio.doc", ole},
		{"planilha.xls", ole},
	}
	for _, caso := range casos {
		fh, file := makeFileHeader(t, caso.nome, caso.conteudo)
		assert.NoError(t, ValidateFile(fh, file, "documento"), caso.nome)
	}
}

func TestValidateFile_ContainerSemExtensaoDeOffice(t *testing.T) {
	// Um zip qualquer sem extensão de Office continua barrado.
	fh, file := makeFileHeader(t, "pacote.zip", []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00})
	err := ValidateFile(fh, file, "documento")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, httpErr.Message, "application/zip")
}

func TestValidateFile_BinarioDisfarcadoDeDoc(t *testing.T) {
	// Extensão .doc sem o cabeçalho OLE: segue como octet-stream e é rejeitado.
	fh, file := makeFileHeader(t, "malicioso.doc", []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00})
	err := ValidateFile(fh, file, "documento")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.CodeValidation, httpErr.ErrorCode)
}

func TestValidateFile_TextoCurtoAceito(t *testing.T) {
	fh, file := makeFileHeader(t, "nota.txt", []byte("despacho breve"))
	assert.NoError(t, ValidateFile(fh, file, "documento"))
}

func TestValidateFile_TamanhoExcedido(t *testing.T) {
	grande := bytes.Repeat([]byte("a"), 11*1024*1024)
	fh, file := makeFileHeader(t, "grande.txt", grande)

	err := ValidateFile(fh, file, "documento")
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestValidateFile_CursorVoltaAoInicio(t *testing.T) {
	conteudo := []byte("%PDF-1.7 corpo do documento")
	fh, file := makeFileHeader(t, "oficio.pdf", conteudo)

	require.NoError(t, ValidateFile(fh, file, "documento"))

	// Depois da validação a gravação precisa ler o arquivo inteiro.
	lido, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, conteudo, lido)
}

func TestValidateFile_ContextoDesconhecido(t *testing.T) {
	fh, file := makeFileHeader(t, "x.pdf", []byte("%PDF-1.7"))
	err := ValidateFile(fh, file, "avatar")
	assert.Error(t, err)
}
